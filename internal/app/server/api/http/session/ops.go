package session

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"banker/internal/app/server/api/http/middleware/guard"
	"banker/internal/domain/access"
)

func (h *Handler) guarded(view access.View) huma.Middlewares {
	mws := make(huma.Middlewares, 0, len(h.middleware)+1)
	mws = append(mws, h.middleware...)
	return append(mws, h.guard.Middleware(view))
}

func (h *Handler) stateOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-state",
		Method:      http.MethodGet,
		Path:        guard.Prefix + "/session",
		Summary:     "Текущая сессия",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-logout",
		Method:      http.MethodDelete,
		Path:        guard.Prefix + "/session",
		Summary:     "Выход",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) loginViewOp() huma.Operation {
	return huma.Operation{
		OperationID: "view-login",
		Method:      http.MethodGet,
		Path:        guard.PathOf(access.Login),
		Summary:     "Экран входа",
		Tags:        []string{"session"},
		Middlewares: h.guarded(access.Login),
	}
}

func (h *Handler) registerViewOp() huma.Operation {
	return huma.Operation{
		OperationID: "view-register",
		Method:      http.MethodGet,
		Path:        guard.PathOf(access.Register),
		Summary:     "Экран регистрации",
		Tags:        []string{"session"},
		Middlewares: h.guarded(access.Register),
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-login",
		Method:      http.MethodPost,
		Path:        guard.PathOf(access.Login),
		Summary:     "Авторизация пользователя",
		Tags:        []string{"session"},
		Middlewares: h.guarded(access.Login),
	}
}

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "session-register",
		Method:        http.MethodPost,
		Path:          guard.PathOf(access.Register),
		Summary:       "Регистрация пользователя",
		Tags:          []string{"session"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.guarded(access.Register),
	}
}

func (h *Handler) homeOp() huma.Operation {
	return huma.Operation{
		OperationID: "view-home",
		Method:      http.MethodGet,
		Path:        guard.PathOf(access.Home),
		Summary:     "Домашний экран, перенаправляет на дашборд",
		Tags:        []string{"session"},
		Middlewares: h.guarded(access.Home),
	}
}
