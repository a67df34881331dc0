package account

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RecentLimit is how many transactions a dashboard shows.
const RecentLimit = 10

type Account struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	OwnerName     string          `json:"name"`
	FatherName    string          `json:"father_name"`
	PhoneNumber   string          `json:"phone_number"`
	IBAN          string          `json:"iban"`
	CryptoAddress string          `json:"address"`
	Balance       decimal.Decimal `json:"balance"`
}

type Beneficiary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	IBAN    string `json:"iban"`
	Address string `json:"address"`
}

type TxType string

const (
	TxSend    TxType = "send"
	TxReceive TxType = "receive"
)

type Transaction struct {
	ID        int64           `json:"id"`
	Type      TxType          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp Timestamp       `json:"timestamp"`
	ToIBAN    string          `json:"to_iban,omitempty"`
	ToAddress string          `json:"to_address,omitempty"`
}

// Counterparty returns whichever destination the transaction carries.
func (t Transaction) Counterparty() string {
	if t.ToIBAN != "" {
		return t.ToIBAN
	}
	return t.ToAddress
}

// Snapshot is everything the user dashboard shows, fetched together.
// Snapshots are replaced, never merged.
type Snapshot struct {
	// Account is nil when the user has no account yet.
	Account       *Account
	Beneficiaries []Beneficiary
	Transactions  []Transaction
}

// RecentTransactions returns at most RecentLimit transactions, newest first.
func (s *Snapshot) RecentTransactions() []Transaction {
	return Recent(s.Transactions, RecentLimit)
}

// Recent sorts a copy of txs newest first and truncates it to limit.
func Recent(txs []Transaction, limit int) []Transaction {
	out := make([]Transaction, len(txs))
	copy(out, txs)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp.Time)
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
