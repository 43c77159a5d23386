package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the parts of an access token the client shows to the user. The
// signature is not checked; the server remains the authority.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// ParseClaims reads the registered claims of a JWT without verifying it.
func ParseClaims(token string) (Claims, error) {
	var rc jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &rc); err != nil {
		return Claims{}, err
	}

	c := Claims{Subject: rc.Subject}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}

// Expired reports whether the token has an expiry at or before now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}
