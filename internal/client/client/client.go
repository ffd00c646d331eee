package client

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

// Client is the transport-agnostic contract with the auth service. Every
// call is a single request/response exchange: no retries, no caching.
type Client interface {
	Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResult, error)
	Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResult, error)
	FetchProfile(ctx context.Context, token string) (*models.User, error)
}
