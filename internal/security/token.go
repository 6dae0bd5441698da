package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and decodes signed bearer tokens. The subject is the
// user ID; expiry is absolute (issue time + TTL).
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	method jwt.SigningMethod
}

// NewTokenManager creates a TokenManager for the named HMAC algorithm
// (e.g. "HS256"). Returns an error for unknown algorithm names.
func NewTokenManager(secret, algorithm string, ttl time.Duration) (*TokenManager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q: only HMAC methods are allowed", algorithm)
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		method: method,
	}, nil
}

// Issue creates a signed token carrying the subject and an expiry.
func (m *TokenManager) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(m.method, claims)
	return token.SignedString(m.secret)
}

// Decode verifies the token's signature and expiry and returns the subject.
// A malformed, tampered, or expired token yields ok=false; Decode never
// surfaces an error to the caller.
func (m *TokenManager) Decode(tokenString string) (subject string, ok bool) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}
