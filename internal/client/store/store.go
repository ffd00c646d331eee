// Package store is the durable mirror of an authenticated session: the
// bearer token and the last known user record, written together on
// successful authentication and removed together on logout or
// invalidation.
//
// Every operation is total. A store that cannot be read is reported as
// empty and a failed write is logged, never returned, so the session
// machine never has to handle storage errors.
package store

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

// Keys under which the session is persisted.
const (
	KeyToken = "auth_token"
	KeyUser  = "user"
)

// Credentials is the persisted, authenticated subset of a session.
type Credentials struct {
	Token string
	User  models.User
}

// CredentialStore persists Credentials across process restarts.
type CredentialStore interface {
	Save(ctx context.Context, token string, user models.User)
	Load(ctx context.Context) (*Credentials, bool)
	Clear(ctx context.Context)
}
