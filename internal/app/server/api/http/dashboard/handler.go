package dashboard

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"banker/internal/app/server/api/http/problem"
	"banker/internal/domain/account"
)

type Handler struct {
	service    account.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service account.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.showOp(), h.show)
	huma.Register(api, h.historyOp(), h.history)
	huma.Register(api, h.transferOp(), h.transfer)
	huma.Register(api, h.addBeneficiaryOp(), h.addBeneficiary)
}

func (h *Handler) show(ctx context.Context, _ *struct{}) (*dashboardOutput, error) {
	snap, err := h.service.LoadSnapshot(ctx)
	if err != nil {
		return nil, problem.From(err, account.MsgFetchFailed)
	}
	return &dashboardOutput{Body: dashboardResponse(snap)}, nil
}

func (h *Handler) history(ctx context.Context, input *historyInput) (*historyOutput, error) {
	period, err := account.ParsePeriod(input.Period)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	txs, err := h.service.History(ctx, period)
	if err != nil {
		return nil, problem.From(err, account.MsgFetchFailed)
	}
	if txs == nil {
		txs = []account.Transaction{}
	}
	return &historyOutput{Body: txs}, nil
}

func (h *Handler) transfer(ctx context.Context, input *transferInput) (*workflowOutput, error) {
	out, err := h.service.Transfer(ctx, input.Body)
	if err != nil {
		return nil, problem.From(err, account.MsgTransferFailed)
	}
	return workflowResponse(out), nil
}

func (h *Handler) addBeneficiary(ctx context.Context, input *beneficiaryInput) (*workflowOutput, error) {
	out, err := h.service.AddBeneficiary(ctx, input.Body)
	if err != nil {
		return nil, problem.From(err, account.MsgBeneficiaryFailed)
	}
	return workflowResponse(out), nil
}
