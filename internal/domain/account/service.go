package account

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"banker/internal/domain/failure"
	"banker/internal/domain/workflow"
)

const (
	MsgFetchFailed       = "Failed to fetch data"
	MsgTransferred       = "Transfer successful!"
	MsgTransferFailed    = "Transfer failed"
	MsgBeneficiaryAdded  = "Beneficiary added successfully!"
	MsgBeneficiaryFailed = "Failed to add beneficiary"
)

const (
	workflowTransfer       = "transfer"
	workflowAddBeneficiary = "add_beneficiary"
)

type Outcome = workflow.Outcome[*Snapshot]

type Servicer interface {
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
	History(ctx context.Context, period Period) ([]Transaction, error)
	Transfer(ctx context.Context, in TransferInput) (*Outcome, error)
	AddBeneficiary(ctx context.Context, in BeneficiaryInput) (*Outcome, error)
}

// Service serves the account holder's dashboard.
type Service struct {
	repo  Repository
	guard *workflow.Guard
	log   *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		guard: workflow.NewGuard(),
		log:   log.With(slog.String("component", "account")),
	}
}

// LoadSnapshot reads the account, beneficiaries and transactions at once.
// Either all three succeed or the snapshot fails as a whole.
func (s *Service) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	var (
		accounts      []Account
		beneficiaries []Beneficiary
		transactions  []Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = s.repo.Accounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		beneficiaries, err = s.repo.Beneficiaries(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = s.repo.Transactions(gctx, PeriodAll)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Warn("load snapshot", slog.String("error", err.Error()))
		return nil, &failure.DomainError{Err: err, Message: MsgFetchFailed, Code: failure.CodeSnapshot}
	}

	snap := &Snapshot{
		Beneficiaries: beneficiaries,
		Transactions:  transactions,
	}
	if len(accounts) > 0 {
		snap.Account = &accounts[0]
	}

	return snap, nil
}

// History returns the transactions of the given period, newest first.
func (s *Service) History(ctx context.Context, period Period) ([]Transaction, error) {
	txs, err := s.repo.Transactions(ctx, period)
	if err != nil {
		return nil, failure.Wrap(err, MsgFetchFailed)
	}
	return Recent(txs, -1), nil
}

// Transfer sends money to an IBAN or a crypto address. Which destination
// wins when both or neither are given is up to the backend.
func (s *Service) Transfer(ctx context.Context, in TransferInput) (*Outcome, error) {
	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	req := TransferRequest{
		ToIBAN:    strings.TrimSpace(in.ToIBAN),
		ToAddress: strings.TrimSpace(in.ToAddress),
		Amount:    json.Number(amount.String()),
	}

	return workflow.Run(ctx, s.guard, s.log, workflow.Step[*Snapshot]{
		Name:    workflowTransfer,
		Success: MsgTransferred,
		Failure: MsgTransferFailed,
		Call: func(ctx context.Context) (string, error) {
			resp, err := s.repo.Transfer(ctx, req)
			return resp.Message, err
		},
		Refresh: s.LoadSnapshot,
	})
}

func (s *Service) AddBeneficiary(ctx context.Context, in BeneficiaryInput) (*Outcome, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.IBAN = strings.TrimSpace(in.IBAN)
	in.Address = strings.TrimSpace(in.Address)

	switch {
	case in.Name == "":
		return nil, failure.Validation("name is required")
	case in.IBAN == "":
		return nil, failure.Validation("iban is required")
	case in.Address == "":
		return nil, failure.Validation("address is required")
	}

	return workflow.Run(ctx, s.guard, s.log, workflow.Step[*Snapshot]{
		Name:    workflowAddBeneficiary,
		Success: MsgBeneficiaryAdded,
		Failure: MsgBeneficiaryFailed,
		Call: func(ctx context.Context) (string, error) {
			_, err := s.repo.AddBeneficiary(ctx, in)
			return "", err
		},
		Refresh: s.LoadSnapshot,
	})
}

// ParseAmount reads a form amount as a decimal.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, failure.Validation("amount is required")
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, failure.Validation("amount %q is not a number", raw)
	}

	return amount, nil
}
