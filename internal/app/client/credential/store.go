// Package credential keeps the bearer token between runs.
package credential

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"banker/internal/app/client/config"
	"banker/internal/infrastructure/migration"
)

// Store is a credential backend. It never inspects the token.
type Store interface {
	Save(ctx context.Context, token string) error
	Read(ctx context.Context) (string, bool, error)
	Clear(ctx context.Context) error
	Close() error
}

// New opens the backend selected by cfg.CredentialBackend.
func New(cfg *config.Config, log *slog.Logger) (Store, error) {
	switch cfg.CredentialBackend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendSQLite:
		store, err := NewSQLiteStore(cfg.DatabasePath, migration.DefaultEngine)
		if err != nil {
			return nil, err
		}
		log.Debug("credential store opened", slog.String("backend", cfg.CredentialBackend), slog.String("path", cfg.DatabasePath))
		return store, nil
	case config.BackendFile, "":
		return NewFileStore(cfg.TokenPath), nil
	default:
		return nil, fmt.Errorf("unknown credential backend %q", cfg.CredentialBackend)
	}
}
