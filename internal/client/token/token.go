// Package token decodes the claims of a bearer token for display. The
// signature is not checked; the server remains the only authority on
// whether a token is valid.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrOpaque is returned for tokens that are not JWTs.
var ErrOpaque = errors.New("token is not a JWT")

// Info is what the client shows about its token.
type Info struct {
	Subject   string
	UserID    int64
	Username  string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry earlier than now.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

type claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Inspect decodes raw without verifying it.
func Inspect(raw string) (Info, error) {
	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &c); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrOpaque, err)
	}

	info := Info{
		Subject:  c.Subject,
		UserID:   c.UserID,
		Username: c.Username,
	}
	if c.ExpiresAt != nil {
		info.ExpiresAt = c.ExpiresAt.Time
	}
	return info, nil
}
