package admin

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"banker/internal/app/server/api/http/middleware/guard"
	"banker/internal/domain/access"
)

func (h *Handler) showOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-dashboard",
		Method:      http.MethodGet,
		Path:        guard.PathOf(access.AdminDashboard),
		Summary:     "Дашборд администратора",
		Tags:        []string{"admin"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) accountOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-account",
		Method:      http.MethodGet,
		Path:        guard.Prefix + "/admin/accounts/{id}",
		Summary:     "Счет по идентификатору",
		Tags:        []string{"admin"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createUserOp() huma.Operation {
	return huma.Operation{
		OperationID:   "admin-create-user",
		Method:        http.MethodPost,
		Path:          guard.Prefix + "/admin/users",
		Summary:       "Создать пользователя и счет",
		Tags:          []string{"admin"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) addMoneyOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-add-money",
		Method:      http.MethodPost,
		Path:        guard.Prefix + "/admin/add-money",
		Summary:     "Пополнить счет",
		Tags:        []string{"admin"},
		Middlewares: h.middleware,
	}
}
