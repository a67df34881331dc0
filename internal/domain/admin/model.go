package admin

import (
	"github.com/shopspring/decimal"

	"banker/internal/domain/account"
)

// Snapshot is the admin dashboard: bank totals plus every account.
type Snapshot struct {
	Accounts              []account.Account
	TotalMoney            decimal.Decimal
	TotalTransferredToday decimal.Decimal
}

// ByIBAN finds an account of the roster.
func (s *Snapshot) ByIBAN(iban string) (account.Account, bool) {
	for _, a := range s.Accounts {
		if a.IBAN == iban {
			return a, true
		}
	}
	return account.Account{}, false
}
