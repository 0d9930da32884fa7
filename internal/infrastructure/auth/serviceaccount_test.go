package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceAccount(t *testing.T) {
	sa, err := ParseServiceAccount(serviceAccountJSON(t, "back-informatica"))
	require.NoError(t, err)

	assert.Equal(t, "back-informatica", sa.ProjectID)
	assert.Equal(t, "kid-1", sa.PrivateKeyID)
	assert.NotNil(t, sa.Key())
}

func TestParseServiceAccount_Invalid(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not json", "{"},
		{"missing project", `{"private_key":"x"}`},
		{"missing key", `{"project_id":"p"}`},
		{"bad pem", `{"project_id":"p","private_key":"not a key"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseServiceAccount([]byte(tt.blob))
			assert.Error(t, err)
		})
	}
}
