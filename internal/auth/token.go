package auth

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// CredentialExpiry reports the expiry a JWT-shaped credential claims about itself. The
// signature is not checked and the result is informational only: the server stays the
// sole judge of validity. Opaque credentials report false.
func CredentialExpiry(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(value, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
