package banktest

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var (
	errUsernameTaken = errors.New("Username already registered")
	errBadLogin      = errors.New("Invalid credentials")
	errInsufficient  = errors.New("Insufficient funds or account not found")
	errNoRecipient   = errors.New("Recipient not found")
	errNoAccount     = errors.New("Account not found")
	errHasAccount    = errors.New("User already has an account")
	errBadAmount     = errors.New("Amount must be positive")
)

type userRecord struct {
	ID       int64
	Username string
	Hash     []byte
	IsAdmin  bool
}

type accountRecord struct {
	ID          int64
	UserID      int64
	Name        string
	FatherName  string
	PhoneNumber string
	IBAN        string
	Address     string
	Balance     decimal.Decimal
}

type beneficiaryRecord struct {
	ID      int64
	UserID  int64
	Name    string
	IBAN    string
	Address string
}

type txRecord struct {
	ID        int64
	AccountID int64
	Type      string
	Amount    decimal.Decimal
	Timestamp time.Time
	ToIBAN    string
	ToAddress string
}

// ledger is the fake bank's state. One mutex serialises every change, so
// a transfer debits and credits atomically.
type ledger struct {
	mu            sync.Mutex
	nextID        int64
	now           func() time.Time
	users         map[string]*userRecord
	accounts      []*accountRecord
	beneficiaries []*beneficiaryRecord
	txs           []*txRecord
}

func newLedger() *ledger {
	return &ledger{
		now:   func() time.Time { return time.Now().UTC() },
		users: make(map[string]*userRecord),
	}
}

func (l *ledger) id() int64 {
	l.nextID++
	return l.nextID
}

func (l *ledger) addUser(username, password string, isAdmin bool) (*userRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.users[username]; ok {
		return nil, errUsernameTaken
	}
	u := &userRecord{ID: l.id(), Username: username, Hash: hash, IsAdmin: isAdmin}
	l.users[username] = u

	cp := *u
	return &cp, nil
}

func (l *ledger) authenticate(username, password string) (*userRecord, error) {
	l.mu.Lock()
	u, ok := l.users[username]
	l.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(u.Hash, []byte(password)) != nil {
		return nil, errBadLogin
	}
	cp := *u
	return &cp, nil
}

func (l *ledger) user(username string) (*userRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	u, ok := l.users[username]
	if !ok {
		return nil, false
	}
	cp := *u
	return &cp, true
}

func (l *ledger) openAccount(userID int64, name, fatherName, phone, iban string, balance decimal.Decimal) (*accountRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, a := range l.accounts {
		if a.UserID == userID {
			return nil, errHasAccount
		}
	}

	id := l.id()
	if iban == "" {
		iban = fmt.Sprintf("AB%012d", id)
	}
	a := &accountRecord{
		ID:          id,
		UserID:      userID,
		Name:        name,
		FatherName:  fatherName,
		PhoneNumber: phone,
		IBAN:        iban,
		Address:     fmt.Sprintf("CR%032d", id),
		Balance:     balance,
	}
	l.accounts = append(l.accounts, a)

	cp := *a
	return &cp, nil
}

func (l *ledger) accountsOf(userID int64) []accountRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []accountRecord
	for _, a := range l.accounts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out
}

func (l *ledger) allAccounts() []accountRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]accountRecord, 0, len(l.accounts))
	for _, a := range l.accounts {
		out = append(out, *a)
	}
	return out
}

func (l *ledger) accountByID(id int64) (*accountRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, a := range l.accounts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, errNoAccount
}

func (l *ledger) addBeneficiary(userID int64, name, iban, address string) beneficiaryRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := &beneficiaryRecord{ID: l.id(), UserID: userID, Name: name, IBAN: iban, Address: address}
	l.beneficiaries = append(l.beneficiaries, b)
	return *b
}

func (l *ledger) beneficiariesOf(userID int64) []beneficiaryRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []beneficiaryRecord
	for _, b := range l.beneficiaries {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out
}

// transfer moves amount from the user's account to the account matching
// toIBAN, or toAddress when no IBAN is given.
func (l *ledger) transfer(userID int64, toIBAN, toAddress string, amount decimal.Decimal) (*txRecord, error) {
	if !amount.IsPositive() {
		return nil, errBadAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var sender *accountRecord
	for _, a := range l.accounts {
		if a.UserID == userID {
			sender = a
			break
		}
	}
	if sender == nil || sender.Balance.LessThan(amount) {
		return nil, errInsufficient
	}

	var recipient *accountRecord
	for _, a := range l.accounts {
		if (toIBAN != "" && a.IBAN == toIBAN) || (toIBAN == "" && toAddress != "" && a.Address == toAddress) {
			recipient = a
			break
		}
	}
	if recipient == nil {
		return nil, errNoRecipient
	}

	sender.Balance = sender.Balance.Sub(amount)
	recipient.Balance = recipient.Balance.Add(amount)

	now := l.now()
	send := &txRecord{ID: l.id(), AccountID: sender.ID, Type: "send", Amount: amount, Timestamp: now, ToIBAN: toIBAN, ToAddress: toAddress}
	receive := &txRecord{ID: l.id(), AccountID: recipient.ID, Type: "receive", Amount: amount, Timestamp: now, ToIBAN: sender.IBAN, ToAddress: sender.Address}
	l.txs = append(l.txs, send, receive)

	cp := *send
	return &cp, nil
}

// transactionsOf returns the user's transactions since the period start, newest first.
func (l *ledger) transactionsOf(userID int64, period string) []txRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	var acc *accountRecord
	for _, a := range l.accounts {
		if a.UserID == userID {
			acc = a
			break
		}
	}
	if acc == nil {
		return nil
	}

	start := periodStart(l.now(), period)
	var out []txRecord
	for i := len(l.txs) - 1; i >= 0; i-- {
		tx := l.txs[i]
		if tx.AccountID == acc.ID && !tx.Timestamp.Before(start) {
			out = append(out, *tx)
		}
	}
	return out
}

func (l *ledger) addMoney(iban string, amount decimal.Decimal) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, a := range l.accounts {
		if a.IBAN == iban {
			a.Balance = a.Balance.Add(amount)
			return a.Balance, nil
		}
	}
	return decimal.Zero, errNoAccount
}

func (l *ledger) totalMoney() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := decimal.Zero
	for _, a := range l.accounts {
		total = total.Add(a.Balance)
	}
	return total
}

func (l *ledger) transferredToday() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := periodStart(l.now(), "daily")
	total := decimal.Zero
	for _, tx := range l.txs {
		if tx.Type == "send" && !tx.Timestamp.Before(start) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

func periodStart(now time.Time, period string) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch period {
	case "daily":
		return midnight
	case "weekly":
		// weeks start on Monday
		offset := (int(now.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -offset)
	default:
		return time.Time{}
	}
}
