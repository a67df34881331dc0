package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Pinger checks the banking backend.
type Pinger interface {
	CheckConnection(ctx context.Context) error
}

type Handler struct {
	backend    Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(backend Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		backend:    backend,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	resp := Response{Status: "OK", Backend: "up"}
	if err := h.backend.CheckConnection(ctx); err != nil {
		h.log.Warn("backend unreachable", slog.String("error", err.Error()))
		resp.Backend = "down"
		resp.Error = err.Error()
	}

	return &Output{Body: resp}, nil
}
