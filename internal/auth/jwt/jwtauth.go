// Package jwt issues and verifies the HS256 session tokens handed out by
// the back-office login endpoint.
package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
)

// VerifyToken checks the token signature and expiry and returns the
// subject claim, which carries the admin username when one was set.
func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	return t.Subject(), nil
}

// NewToken issues a token with no subject, valid for ttl.
func NewToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration) (string, error) {
	return NewTokenWithSubject(jwtAuth, ttl, "")
}

// NewTokenWithSubject issues a token carrying the admin username as the
// subject claim so back-office actions can be attributed to a user.
func NewTokenWithSubject(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return ts, err
	}
	return ts, nil
}
