package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/back-informatica/chamados/internal/domain/identity"
)

// Claims is the payload of an identity token. The subject is the uid.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// IDTokenService signs and verifies RS256 identity tokens with the service
// account key. Tokens are bound to the project through the audience claim.
type IDTokenService struct {
	key      *rsa.PrivateKey
	keyID    string
	audience string
	issuer   string
	ttl      time.Duration
	now      func() time.Time
}

// NewIDTokenService builds the service for sa. An empty issuer defaults to the
// service account email.
func NewIDTokenService(sa *ServiceAccount, projectID, issuer string, ttl time.Duration) *IDTokenService {
	if projectID == "" {
		projectID = sa.ProjectID
	}
	if issuer == "" {
		issuer = sa.ClientEmail
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &IDTokenService{
		key:      sa.Key(),
		keyID:    sa.PrivateKeyID,
		audience: projectID,
		issuer:   issuer,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *IDTokenService) Issue(ctx context.Context, subject identity.Subject) (*identity.IssuedToken, error) {
	if subject.UID == "" {
		return nil, fmt.Errorf("subject uid is required")
	}

	now := s.now().UTC()
	exp := now.Add(s.ttl)
	claims := &Claims{
		Email: subject.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.UID,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if s.keyID != "" {
		token.Header["kid"] = s.keyID
	}

	signed, err := token.SignedString(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign identity token: %w", err)
	}

	return &identity.IssuedToken{Token: signed, ExpiresAt: exp}, nil
}

// Verify checks signature, audience, issuer and expiry. Unparsable input maps
// to identity.ErrTokenMalformed, every other failure to identity.ErrTokenRejected.
func (s *IDTokenService) Verify(ctx context.Context, rawToken string) (*identity.Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(s.audience),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)

	token, err := parser.ParseWithClaims(rawToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return &s.key.PublicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, fmt.Errorf("%w: %v", identity.ErrTokenMalformed, err)
		}
		return nil, fmt.Errorf("%w: %v", identity.ErrTokenRejected, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, identity.ErrTokenRejected
	}

	out := &identity.Claims{UID: claims.Subject, Email: claims.Email}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.UTC()
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.UTC()
	}
	return out, nil
}
