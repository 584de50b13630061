// Package sessiontest signs console session tokens for handler tests.
package sessiontest

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SignToken signs an HS256 token the identity service would hand out.
// A negative expiry yields a token that is already expired.
func SignToken(subject, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	})
	return token.SignedString([]byte(secret))
}
