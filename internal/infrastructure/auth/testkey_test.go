package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/require"
)

// serviceAccountJSON builds a credential blob around a fresh RSA key.
func serviceAccountJSON(t *testing.T, projectID string) []byte {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	blob, err := json.Marshal(map[string]string{
		"type":           "service_account",
		"project_id":     projectID,
		"private_key_id": "kid-1",
		"private_key":    string(keyPEM),
		"client_email":   "chamados@" + projectID + ".iam.example.com",
	})
	require.NoError(t, err)
	return blob
}

func testServiceAccount(t *testing.T, projectID string) *ServiceAccount {
	t.Helper()
	sa, err := ParseServiceAccount(serviceAccountJSON(t, projectID))
	require.NoError(t, err)
	return sa
}
