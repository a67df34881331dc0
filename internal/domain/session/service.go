package session

import (
	"context"
	"sync"

	"golang.org/x/exp/slog"

	"banker/internal/domain/failure"
	"banker/internal/domain/user"
)

const (
	MsgLoginFailed    = "Login failed"
	MsgRegistered     = "Registration successful! Please login."
	MsgRegisterFailed = "Registration failed"
)

// Controller owns the signed-in identity. It is created once per process
// and shared by everything that needs to know who the user is.
type Controller struct {
	auth      Authenticator
	store     CredentialStore
	validator user.Validator
	log       *slog.Logger

	mu       sync.RWMutex
	state    State
	identity *user.Identity
}

func NewController(auth Authenticator, store CredentialStore, log *slog.Logger) *Controller {
	return &Controller{
		auth:      auth,
		store:     store,
		validator: user.NewFormValidator(false),
		log:       log.With(slog.String("component", "session")),
		state:     StateInitializing,
	}
}

// Init restores the session from the stored credential. A credential that
// cannot be decoded is discarded and the session becomes anonymous.
func (c *Controller) Init(ctx context.Context) State {
	token, ok, err := c.store.Read(ctx)
	if err != nil {
		c.log.Warn("read credential", slog.String("error", err.Error()))
		return c.becomeAnonymous()
	}
	if !ok {
		return c.becomeAnonymous()
	}

	identity, err := user.Resolve(token)
	if err != nil {
		c.log.Info("discarding stored credential", slog.String("error", err.Error()))
		if err := c.store.Clear(ctx); err != nil {
			c.log.Warn("clear credential", slog.String("error", err.Error()))
		}
		return c.becomeAnonymous()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.identity = &identity
	c.state = StateAuthenticated

	return c.state
}

// Login exchanges username and password for a credential. On any failure
// the session and the stored credential are left as they were.
func (c *Controller) Login(ctx context.Context, username, password string) (user.Identity, error) {
	req := user.BaseRequest{Username: username, Password: password}
	if err := c.validator.ValidateLogin(req); err != nil {
		return user.Identity{}, failure.Validation("%s", err.Error())
	}

	token, err := c.auth.Login(ctx, req)
	if err != nil {
		return user.Identity{}, failure.Wrap(err, MsgLoginFailed)
	}

	identity, err := user.Resolve(token)
	if err != nil {
		c.log.Warn("backend returned an unreadable credential", slog.String("error", err.Error()))
		return user.Identity{}, &failure.DomainError{Err: err, Message: MsgLoginFailed, Code: failure.CodeRejected}
	}

	if err := c.store.Save(ctx, token); err != nil {
		c.log.Error("save credential", slog.String("error", err.Error()))
		return user.Identity{}, &failure.DomainError{Err: err, Message: MsgLoginFailed, Code: failure.CodeTransport}
	}

	c.mu.Lock()
	c.identity = &identity
	c.state = StateAuthenticated
	c.mu.Unlock()

	c.log.Info("logged in", slog.String("subject", identity.Subject), slog.String("role", identity.Role()))

	return identity, nil
}

// Register creates a backend user. It never signs the user in.
func (c *Controller) Register(ctx context.Context, username, password string) (string, error) {
	req := user.BaseRequest{Username: username, Password: password}
	if err := c.validator.ValidateRegister(req, password); err != nil {
		return "", failure.Validation("%s", err.Error())
	}

	if err := c.auth.Register(ctx, req); err != nil {
		return "", failure.Wrap(err, MsgRegisterFailed)
	}

	return MsgRegistered, nil
}

// Logout forgets the credential. It always succeeds.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		c.log.Warn("clear credential", slog.String("error", err.Error()))
	}
	c.becomeAnonymous()
}

// Identity returns the current identity, if any.
func (c *Controller) Identity() (user.Identity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.identity == nil {
		return user.Identity{}, false
	}
	return *c.identity, true
}

func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Controller) becomeAnonymous() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.identity = nil
	c.state = StateAnonymous
	return c.state
}
