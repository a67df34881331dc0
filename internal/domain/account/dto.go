package account

import (
	"encoding/json"
)

// Period filters the transaction history.
type Period string

const (
	PeriodAll    Period = ""
	PeriodDaily  Period = "daily"
	PeriodWeekly Period = "weekly"
)

func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case PeriodAll, PeriodDaily, PeriodWeekly:
		return p, nil
	case "all":
		return PeriodAll, nil
	default:
		return "", ErrUnknownPeriod
	}
}

// TransferInput is the transfer form as typed by the user.
type TransferInput struct {
	ToIBAN    string `json:"to_iban,omitempty"`
	ToAddress string `json:"to_address,omitempty"`
	Amount    string `json:"amount"`
}

// TransferRequest is the body of POST /transfer.
type TransferRequest struct {
	ToIBAN    string      `json:"to_iban,omitempty"`
	ToAddress string      `json:"to_address,omitempty"`
	Amount    json.Number `json:"amount"`
}

// TransferResponse covers both a bare {message} and the created transaction.
type TransferResponse struct {
	Message string `json:"message,omitempty"`
	ID      int64  `json:"id,omitempty"`
}

// BeneficiaryInput is the body of POST /beneficiaries.
type BeneficiaryInput struct {
	Name    string `json:"name"`
	IBAN    string `json:"iban"`
	Address string `json:"address"`
}
