package session

import (
	"context"

	"banker/internal/domain/user"
)

// CredentialStore keeps the bearer credential between runs.
type CredentialStore interface {
	Save(ctx context.Context, token string) error
	// Read reports ok=false when nothing is stored.
	Read(ctx context.Context) (token string, ok bool, err error)
	// Clear removes the credential. Clearing an absent credential is not an error.
	Clear(ctx context.Context) error
}

// Authenticator talks to the backend's public endpoints.
type Authenticator interface {
	Login(ctx context.Context, req user.BaseRequest) (string, error)
	Register(ctx context.Context, req user.BaseRequest) error
}
