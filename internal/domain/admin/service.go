package admin

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"banker/internal/domain/account"
	"banker/internal/domain/failure"
	"banker/internal/domain/workflow"
)

const (
	MsgUserCreated       = "User and account created successfully!"
	MsgCreateUserFailed  = "Failed to create user"
	MsgAddMoneyFailed    = "Failed to add money"
	MsgAccountLoadFailed = "Failed to fetch account"
)

const (
	workflowCreateUser = "create_user"
	workflowAddMoney   = "add_money"
)

type Outcome = workflow.Outcome[*Snapshot]

type Servicer interface {
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
	Account(ctx context.Context, id int64) (*account.Account, error)
	CreateUserAndAccount(ctx context.Context, req CreateUserRequest) (*Outcome, error)
	AddMoney(ctx context.Context, in AddMoneyInput) (*Outcome, error)
}

// Service serves the admin dashboard.
type Service struct {
	repo  Repository
	guard *workflow.Guard
	log   *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		guard: workflow.NewGuard(),
		log:   log.With(slog.String("component", "admin")),
	}
}

// LoadSnapshot reads the roster and both totals concurrently, all or nothing.
func (s *Service) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Accounts, err = s.repo.AllAccounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.TotalMoney, err = s.repo.TotalMoney(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.TotalTransferredToday, err = s.repo.TotalTransferredToday(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Warn("load admin snapshot", slog.String("error", err.Error()))
		return nil, &failure.DomainError{Err: err, Message: account.MsgFetchFailed, Code: failure.CodeSnapshot}
	}

	return snap, nil
}

func (s *Service) Account(ctx context.Context, id int64) (*account.Account, error) {
	if id <= 0 {
		return nil, failure.Validation("account id must be positive")
	}

	acc, err := s.repo.Account(ctx, id)
	if err != nil {
		return nil, failure.Wrap(err, MsgAccountLoadFailed)
	}
	return acc, nil
}

func (s *Service) CreateUserAndAccount(ctx context.Context, req CreateUserRequest) (*Outcome, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Name = strings.TrimSpace(req.Name)
	req.FatherName = strings.TrimSpace(req.FatherName)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)

	switch {
	case req.Username == "":
		return nil, failure.Validation("username is required")
	case req.Password == "":
		return nil, failure.Validation("password is required")
	case req.Name == "":
		return nil, failure.Validation("name is required")
	case req.FatherName == "":
		return nil, failure.Validation("father name is required")
	case req.PhoneNumber == "":
		return nil, failure.Validation("phone number is required")
	}

	return workflow.Run(ctx, s.guard, s.log, workflow.Step[*Snapshot]{
		Name:    workflowCreateUser,
		Success: MsgUserCreated,
		Failure: MsgCreateUserFailed,
		Call: func(ctx context.Context) (string, error) {
			_, err := s.repo.CreateUserAccount(ctx, req)
			return "", err
		},
		Refresh: s.LoadSnapshot,
	})
}

// AddMoney credits an account. The amount must be positive with at most
// two decimal places.
func (s *Service) AddMoney(ctx context.Context, in AddMoneyInput) (*Outcome, error) {
	iban := strings.TrimSpace(in.IBAN)
	if iban == "" {
		return nil, failure.Validation("iban is required")
	}

	amount, err := account.ParseAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	if err := checkCredit(amount); err != nil {
		return nil, err
	}

	req := AddMoneyRequest{IBAN: iban, Amount: json.Number(amount.String())}

	return workflow.Run(ctx, s.guard, s.log, workflow.Step[*Snapshot]{
		Name:    workflowAddMoney,
		Failure: MsgAddMoneyFailed,
		Call: func(ctx context.Context) (string, error) {
			resp, err := s.repo.AddMoney(ctx, req)
			return resp.Message, err
		},
		Refresh: s.LoadSnapshot,
	})
}

func checkCredit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return failure.Validation("amount must be positive")
	}
	if !amount.Equal(amount.Round(2)) {
		return failure.Validation("amount must have at most two decimal places")
	}
	return nil
}
