package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret!!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!!", hash)

	assert.NoError(t, h.Verify("s3cret!!", hash))
	assert.ErrorIs(t, h.Verify("wrong", hash), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Verify("s3cret!!", "plaintext"), ErrPasswordMismatch)
}

func TestNewBcryptPasswordHasher_CostOutOfRange(t *testing.T) {
	h := NewBcryptPasswordHasher(99)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
