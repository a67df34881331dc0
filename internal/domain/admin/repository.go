package admin

import (
	"context"

	"github.com/shopspring/decimal"

	"banker/internal/domain/account"
)

// Repository is the admin side of the backend.
type Repository interface {
	AllAccounts(ctx context.Context) ([]account.Account, error)
	TotalMoney(ctx context.Context) (decimal.Decimal, error)
	TotalTransferredToday(ctx context.Context) (decimal.Decimal, error)
	Account(ctx context.Context, id int64) (*account.Account, error)
	CreateUserAccount(ctx context.Context, req CreateUserRequest) (*CreatedUser, error)
	AddMoney(ctx context.Context, req AddMoneyRequest) (AddMoneyResponse, error)
}
