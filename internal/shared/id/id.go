// Package id generates the random identifiers assigned to stored records.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DocumentLength matches the length of auto ids in the document store.
	DocumentLength = 20
)

// Generate creates a random Base62 id of the given length. The id is
// cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DocumentLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// NewTicketID generates the id of a new ticket.
func NewTicketID() (string, error) {
	return Generate(DocumentLength)
}

// NewUserID generates the id of a user provisioned without an identity
// platform subject.
func NewUserID() (string, error) {
	return Generate(DocumentLength)
}
