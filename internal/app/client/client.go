package client

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"banker/internal/app/client/config"
	"banker/internal/app/client/credential"
	"banker/internal/domain/access"
	"banker/internal/domain/account"
	"banker/internal/domain/admin"
	"banker/internal/domain/session"
	"banker/internal/domain/user"
)

// App wires the session, the services and the backend client together.
// Presentation layers get everything they need from it.
type App struct {
	config     *config.Config
	log        *slog.Logger
	store      credential.Store
	httpClient *HTTPClient
	session    *session.Controller
	accounts   *account.Service
	admin      *admin.Service
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := credential.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}
	return NewWithStore(cfg, store, log), nil
}

// NewWithStore builds an App around an already opened credential store.
func NewWithStore(cfg *config.Config, store credential.Store, log *slog.Logger) *App {
	httpCl := NewHTTPClient(cfg, store, log)

	return &App{
		config:     cfg,
		log:        log,
		store:      store,
		httpClient: httpCl,
		session:    session.NewController(httpCl, store, log),
		accounts:   account.NewService(httpCl, log),
		admin:      admin.NewService(httpCl, log),
	}
}

// Init restores the session. Nothing role-gated may be shown before it returns.
func (a *App) Init(ctx context.Context) session.State {
	state := a.session.Init(ctx)
	a.log.Debug("session initialised", slog.String("state", state.String()))
	return state
}

func (a *App) Config() *config.Config { return a.config }

func (a *App) Session() *session.Controller { return a.session }

func (a *App) Accounts() *account.Service { return a.accounts }

func (a *App) Admin() *admin.Service { return a.admin }

// Navigate runs the access guard for view against the current identity.
func (a *App) Navigate(view access.View) access.Decision {
	var identity *user.Identity
	if id, ok := a.session.Identity(); ok {
		identity = &id
	}
	return access.Decide(identity, view)
}

// CheckConnection pings the backend.
func (a *App) CheckConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return a.httpClient.HealthCheck(ctx)
}

func (a *App) Close() error {
	return a.store.Close()
}
