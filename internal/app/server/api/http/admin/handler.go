package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"banker/internal/app/server/api/http/problem"
	"banker/internal/domain/account"
	"banker/internal/domain/admin"
	"banker/internal/domain/failure"
)

type Handler struct {
	service    admin.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service admin.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.showOp(), h.show)
	huma.Register(api, h.accountOp(), h.accountByID)
	huma.Register(api, h.createUserOp(), h.createUser)
	huma.Register(api, h.addMoneyOp(), h.addMoney)
}

func (h *Handler) show(ctx context.Context, _ *struct{}) (*dashboardOutput, error) {
	snap, err := h.service.LoadSnapshot(ctx)
	if err != nil {
		return nil, problem.From(err, account.MsgFetchFailed)
	}
	return &dashboardOutput{Body: dashboardResponse(snap)}, nil
}

func (h *Handler) accountByID(ctx context.Context, input *accountInput) (*accountOutput, error) {
	acc, err := h.service.Account(ctx, input.ID)
	if err != nil {
		var apiErr *failure.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, huma.Error404NotFound(failure.Message(err, admin.MsgAccountLoadFailed))
		}
		return nil, problem.From(err, admin.MsgAccountLoadFailed)
	}
	return &accountOutput{Body: acc}, nil
}

func (h *Handler) createUser(ctx context.Context, input *createUserInput) (*workflowOutput, error) {
	b := input.Body
	out, err := h.service.CreateUserAndAccount(ctx, admin.CreateUserRequest{
		Username:    b.Username,
		Password:    b.Password,
		IsAdmin:     b.IsAdmin,
		Name:        b.Name,
		FatherName:  b.FatherName,
		PhoneNumber: b.PhoneNumber,
	})
	if err != nil {
		return nil, problem.From(err, admin.MsgCreateUserFailed)
	}
	return workflowResponse(out), nil
}

func (h *Handler) addMoney(ctx context.Context, input *addMoneyInput) (*workflowOutput, error) {
	out, err := h.service.AddMoney(ctx, input.Body)
	if err != nil {
		return nil, problem.From(err, admin.MsgAddMoneyFailed)
	}
	return workflowResponse(out), nil
}
