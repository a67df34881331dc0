package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"banker/internal/app/server/api/http/middleware/guard"
	"banker/internal/app/server/api/http/problem"
	"banker/internal/domain/access"
	"banker/internal/domain/failure"
	"banker/internal/domain/session"
	"banker/internal/domain/user"
)

// Sessioner is the part of the session controller the gateway drives.
type Sessioner interface {
	State() session.State
	Identity() (user.Identity, bool)
	Login(ctx context.Context, username, password string) (user.Identity, error)
	Register(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context)
}

type Handler struct {
	session    Sessioner
	guard      *guard.Guard
	validator  user.Validator
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(s Sessioner, g *guard.Guard, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		session:    s,
		guard:      g,
		validator:  user.NewFormValidator(true),
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.stateOp(), h.state)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.loginViewOp(), h.view(access.Login))
	huma.Register(api, h.registerViewOp(), h.view(access.Register))
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.homeOp(), h.home)
}

func (h *Handler) current() *stateOutput {
	out := &stateOutput{Body: StateResponse{State: h.session.State().String()}}
	if id, ok := h.session.Identity(); ok {
		out.Body.Identity = identityResponse(id)
	}
	return out
}

func (h *Handler) state(_ context.Context, _ *struct{}) (*stateOutput, error) {
	return h.current(), nil
}

func (h *Handler) logout(ctx context.Context, _ *struct{}) (*stateOutput, error) {
	h.session.Logout(ctx)
	return h.current(), nil
}

func (h *Handler) view(v access.View) func(context.Context, *struct{}) (*viewOutput, error) {
	return func(_ context.Context, _ *struct{}) (*viewOutput, error) {
		return &viewOutput{Body: ViewResponse{View: v}}, nil
	}
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	id, err := h.session.Login(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		h.log.Info("login failed", slog.String("username", input.Body.Username), slog.String("error", err.Error()))
		if failure.CodeOf(err) == failure.CodeRejected {
			return nil, huma.Error401Unauthorized(failure.Message(err, session.MsgLoginFailed))
		}
		return nil, problem.From(err, session.MsgLoginFailed)
	}

	return &loginOutput{
		Body: LoginResponse{
			Identity:   identityResponse(id),
			RedirectTo: access.DashboardFor(id),
		},
	}, nil
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	req := user.BaseRequest{Username: input.Body.Username, Password: input.Body.Password}
	if err := h.validator.ValidateRegister(req, input.Body.ConfirmPassword); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	msg, err := h.session.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, problem.From(err, session.MsgRegisterFailed)
	}

	return &registerOutput{Body: RegisterResponse{Message: msg, RedirectTo: access.Login}}, nil
}

// home only runs for signed-in callers; the guard sends everyone else to login.
func (h *Handler) home(_ context.Context, _ *struct{}) (*homeOutput, error) {
	id, ok := h.session.Identity()
	if !ok {
		return nil, huma.Error401Unauthorized("not signed in")
	}

	to := access.DashboardFor(id)
	return &homeOutput{
		Status:   http.StatusSeeOther,
		Location: guard.PathOf(to),
		Body:     guard.RedirectBody{RedirectTo: to},
	}, nil
}
