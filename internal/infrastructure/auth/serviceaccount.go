package auth

import (
	"crypto/rsa"
	"encoding/json"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceAccount is the subset of the platform credential file used to sign
// and verify identity tokens.
type ServiceAccount struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`

	key *rsa.PrivateKey
}

// ParseServiceAccount decodes a credential blob and its PEM private key.
func ParseServiceAccount(blob []byte) (*ServiceAccount, error) {
	var sa ServiceAccount
	if err := json.Unmarshal(blob, &sa); err != nil {
		return nil, fmt.Errorf("failed to decode service account: %w", err)
	}
	if sa.ProjectID == "" {
		return nil, fmt.Errorf("service account has no project_id")
	}
	if sa.PrivateKey == "" {
		return nil, fmt.Errorf("service account has no private_key")
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(sa.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}
	sa.key = key

	return &sa, nil
}

func (sa *ServiceAccount) Key() *rsa.PrivateKey {
	return sa.key
}
