package dashboard

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"banker/internal/app/server/api/http/middleware/guard"
	"banker/internal/domain/access"
)

func (h *Handler) showOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-dashboard",
		Method:      http.MethodGet,
		Path:        guard.PathOf(access.UserDashboard),
		Summary:     "Дашборд пользователя",
		Tags:        []string{"user"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) historyOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-transactions",
		Method:      http.MethodGet,
		Path:        guard.Prefix + "/user/transactions",
		Summary:     "История транзакций",
		Tags:        []string{"user"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) transferOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-transfer",
		Method:      http.MethodPost,
		Path:        guard.Prefix + "/user/transfer",
		Summary:     "Перевод по IBAN или крипто-адресу",
		Tags:        []string{"user"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) addBeneficiaryOp() huma.Operation {
	return huma.Operation{
		OperationID:   "user-add-beneficiary",
		Method:        http.MethodPost,
		Path:          guard.Prefix + "/user/beneficiaries",
		Summary:       "Добавить получателя",
		Tags:          []string{"user"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}
