// Package token decodes access tokens issued by the library service.
//
// The decode is deliberately unverified: the client has no signing key, and
// the payload is only used for UI decisions (current user, role, expiry).
// Every authorization-sensitive decision is re-checked server-side, so a
// tampered token can at most mislead the local display.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/libracli/internal/client/models"
	"github.com/dmitrijs2005/libracli/internal/common"
)

// timeNow is a test seam for the expiry clock.
var timeNow = time.Now

// Claims are the fields the service puts into an access token:
// subject (username) and expiry via the registered claims, plus the numeric
// user id, role name and optional email.
type Claims struct {
	jwt.RegisteredClaims
	ID    int64  `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
}

// Decode parses tokenString without verifying its signature and returns the
// claims. Malformed input (wrong segment count, bad encoding, non-object
// payload) yields an error wrapping common.ErrInvalidToken.
func Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	return claims, nil
}

// IsExpired reports whether the token's expiry claim is at or before now.
// It is fail-closed: any input that does not decode counts as expired.
// A token without an expiry claim does not expire client-side; the server
// remains the authority either way.
func IsExpired(tokenString string) bool {
	claims, err := Decode(tokenString)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.Time.After(timeNow())
}

// Identity maps decoded claims to the application's view of the current
// user.
func (c *Claims) Identity() *models.Identity {
	return &models.Identity{
		ID:       c.ID,
		Username: c.Subject,
		Role:     c.Role,
		Email:    c.Email,
	}
}
