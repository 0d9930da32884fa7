package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/back-informatica/chamados/internal/domain/identity"
)

var tokenNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestTokenService(t *testing.T, sa *ServiceAccount) *IDTokenService {
	t.Helper()
	s := NewIDTokenService(sa, "", "", 30*time.Minute)
	s.now = func() time.Time { return tokenNow }
	return s
}

func TestIDTokenService_IssueAndVerify(t *testing.T) {
	s := newTestTokenService(t, testServiceAccount(t, "proj"))

	issued, err := s.Issue(context.Background(), identity.Subject{UID: "uid-1", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, tokenNow.Add(30*time.Minute), issued.ExpiresAt)

	claims, err := s.Verify(context.Background(), issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.True(t, tokenNow.Equal(claims.IssuedAt))

	parsed, _, err := jwt.NewParser().ParseUnverified(issued.Token, &Claims{})
	require.NoError(t, err)
	assert.Equal(t, "kid-1", parsed.Header["kid"])
}

func TestIDTokenService_Verify_Expired(t *testing.T) {
	s := newTestTokenService(t, testServiceAccount(t, "proj"))
	issued, err := s.Issue(context.Background(), identity.Subject{UID: "uid-1"})
	require.NoError(t, err)

	s.now = func() time.Time { return tokenNow.Add(2 * time.Hour) }

	_, err = s.Verify(context.Background(), issued.Token)
	assert.ErrorIs(t, err, identity.ErrTokenRejected)
}

func TestIDTokenService_Verify_WrongKeyOrAudience(t *testing.T) {
	signer := newTestTokenService(t, testServiceAccount(t, "proj"))
	issued, err := signer.Issue(context.Background(), identity.Subject{UID: "uid-1"})
	require.NoError(t, err)

	otherKey := newTestTokenService(t, testServiceAccount(t, "proj"))
	_, err = otherKey.Verify(context.Background(), issued.Token)
	assert.ErrorIs(t, err, identity.ErrTokenRejected)

	otherAudience := NewIDTokenService(&ServiceAccount{ProjectID: "other", ClientEmail: signer.issuer, key: signer.key}, "", "", time.Hour)
	otherAudience.now = signer.now
	_, err = otherAudience.Verify(context.Background(), issued.Token)
	assert.ErrorIs(t, err, identity.ErrTokenRejected)
}

func TestIDTokenService_Verify_Malformed(t *testing.T) {
	s := newTestTokenService(t, testServiceAccount(t, "proj"))

	for _, raw := range []string{"", "garbage", "a.b"} {
		_, err := s.Verify(context.Background(), raw)
		assert.ErrorIs(t, err, identity.ErrTokenMalformed, "token %q", raw)
	}
}

func TestIDTokenService_Verify_RejectsHMAC(t *testing.T) {
	s := newTestTokenService(t, testServiceAccount(t, "proj"))
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "uid-1",
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(tokenNow.Add(time.Hour)),
		},
	})
	raw, err := forged.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = s.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, identity.ErrTokenRejected)
}

func TestIDTokenService_Issue_RequiresUID(t *testing.T) {
	s := newTestTokenService(t, testServiceAccount(t, "proj"))
	_, err := s.Issue(context.Background(), identity.Subject{})
	assert.Error(t, err)
}
