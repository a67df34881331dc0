package banktest

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/shopspring/decimal"
)

type accountJSON struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"user_id"`
	Name        string      `json:"name"`
	FatherName  string      `json:"father_name"`
	PhoneNumber string      `json:"phone_number"`
	IBAN        string      `json:"iban"`
	Address     string      `json:"address"`
	Balance     json.Number `json:"balance"`
}

type beneficiaryOut struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	IBAN    string `json:"iban"`
	Address string `json:"address"`
}

type transactionOut struct {
	ID        int64       `json:"id"`
	Type      string      `json:"type"`
	Amount    json.Number `json:"amount"`
	Timestamp string      `json:"timestamp"`
	ToIBAN    *string     `json:"to_iban"`
	ToAddress *string     `json:"to_address"`
}

type validationItem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func accountOut(a accountRecord) accountJSON {
	return accountJSON{
		ID:          a.ID,
		UserID:      a.UserID,
		Name:        a.Name,
		FatherName:  a.FatherName,
		PhoneNumber: a.PhoneNumber,
		IBAN:        a.IBAN,
		Address:     a.Address,
		Balance:     number(a.Balance),
	}
}

func accountsOut(accounts []accountRecord) []accountJSON {
	out := make([]accountJSON, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, accountOut(a))
	}
	return out
}

func txOut(tx txRecord) transactionOut {
	out := transactionOut{
		ID:        tx.ID,
		Type:      tx.Type,
		Amount:    number(tx.Amount),
		Timestamp: tx.Timestamp.UTC().Format(naiveLayout),
	}
	if tx.ToIBAN != "" {
		v := tx.ToIBAN
		out.ToIBAN = &v
	}
	if tx.ToAddress != "" {
		v := tx.ToAddress
		out.ToAddress = &v
	}
	return out
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, map[string]string{"detail": detail})
}

func validationError(where, field, msg string) map[string][]validationItem {
	return map[string][]validationItem{
		"detail": {{Loc: []string{where, field}, Msg: msg, Type: "value_error"}},
	}
}

// missingFields builds a 422 body for every field flagged true, or nil.
func missingFields(fields map[string]bool) map[string][]validationItem {
	names := make([]string, 0, len(fields))
	for name, missing := range fields {
		if missing {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)

	items := make([]validationItem, 0, len(names))
	for _, name := range names {
		items = append(items, validationItem{Loc: []string{"body", name}, Msg: "field required", Type: "value_error.missing"})
	}
	return map[string][]validationItem{"detail": items}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationError("body", "__root__", "invalid JSON body"))
		return false
	}
	return true
}
