package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/courseify/course-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// Claims is the identity a verified token asserts.
type Claims struct {
	Username string
	Role     string
}

// TokenAuthority issues and verifies the signed HS256 assertions used for
// authentication. Tokens are stateless: there is no revocation list, a token
// is valid until its expiry.
type TokenAuthority struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenAuthority creates an authority signing with secret. A non-positive
// ttl falls back to one hour.
func NewTokenAuthority(secret string, ttl time.Duration) *TokenAuthority {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenAuthority{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token binding username and role, expiring after the
// configured TTL.
func (a *TokenAuthority) Issue(username, role string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(a.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(a.secret)
}

// Verify validates signature and expiry and returns the embedded claims.
// Any failure (bad signature, wrong algorithm, expired, malformed claims)
// yields domain.ErrInvalidToken; callers are responsible for checking that
// the returned role matches the operation's required role.
func (a *TokenAuthority) Verify(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("verify token: %w", domain.ErrInvalidToken)
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if username == "" || !domain.ValidRole(role) {
		return nil, fmt.Errorf("verify token: %w", domain.ErrInvalidToken)
	}

	return &Claims{Username: username, Role: role}, nil
}
