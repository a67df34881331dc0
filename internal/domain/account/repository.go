package account

import "context"

// Repository is the backend as seen by an account holder.
type Repository interface {
	Accounts(ctx context.Context) ([]Account, error)
	Beneficiaries(ctx context.Context) ([]Beneficiary, error)
	Transactions(ctx context.Context, period Period) ([]Transaction, error)
	Transfer(ctx context.Context, req TransferRequest) (TransferResponse, error)
	AddBeneficiary(ctx context.Context, req BeneficiaryInput) (*Beneficiary, error)
}
