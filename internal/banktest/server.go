// Package banktest runs an in-process banking backend for tests. It speaks
// the same JSON API as the real service: bearer tokens signed with HS256,
// naive UTC timestamps, and {"detail": ...} error bodies.
package banktest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	"banker/internal/domain/user"
)

const (
	naiveLayout = "2006-01-02T15:04:05.000000"
	tokenTTL    = 30 * time.Minute
)

type ctxKey struct{}

type fault struct {
	status int
	body   string
}

// Server is a running fake backend.
type Server struct {
	*httptest.Server

	ledger *ledger
	secret []byte

	mu     sync.Mutex
	faults map[string]fault
	holds  map[string]chan struct{}
	hits   map[string]int
}

// NewServer starts a backend that is closed when t finishes.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		ledger: newLedger(),
		secret: []byte("banktest-secret"),
		faults: make(map[string]fault),
		holds:  make(map[string]chan struct{}),
		hits:   make(map[string]int),
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)

	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.intercept)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Banking API"})
	})
	r.Post("/register", s.register)
	r.Post("/login", s.login)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticated)

		r.Get("/accounts", s.listAccounts)
		r.Get("/beneficiaries", s.listBeneficiaries)
		r.Post("/beneficiaries", s.addBeneficiary)
		r.Post("/transfer", s.transfer)
		r.Get("/transactions", s.listTransactions)

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminOnly)

			r.Get("/all_accounts", s.allAccounts)
			r.Get("/total_money", s.totalMoney)
			r.Get("/total_transferred_today", s.totalTransferredToday)
			r.Get("/account/{id}", s.accountByID)
			r.Post("/create_user_account", s.createUserAccount)
			r.Post("/add_money", s.addMoney)
		})
	})

	return r
}

// SeedUser creates a user directly in the ledger.
func (s *Server) SeedUser(t testing.TB, username, password string, isAdmin bool) int64 {
	t.Helper()
	u, err := s.ledger.addUser(username, password, isAdmin)
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return u.ID
}

// SeedAccount opens an account for userID with the given IBAN and balance.
func (s *Server) SeedAccount(t testing.TB, userID int64, name, iban, balance string) int64 {
	t.Helper()
	a, err := s.ledger.openAccount(userID, name, "", "", iban, decimal.RequireFromString(balance))
	if err != nil {
		t.Fatalf("seed account %s: %v", iban, err)
	}
	return a.ID
}

// Balance returns the current balance of iban.
func (s *Server) Balance(iban string) (decimal.Decimal, bool) {
	for _, a := range s.ledger.allAccounts() {
		if a.IBAN == iban {
			return a.Balance, true
		}
	}
	return decimal.Zero, false
}

// Token signs a credential for an existing user.
func (s *Server) Token(t testing.TB, username string) string {
	t.Helper()
	u, ok := s.ledger.user(username)
	if !ok {
		t.Fatalf("no user %s", username)
	}
	token, err := s.sign(u)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

// Fail makes every request to path answer status with body until Restore.
func (s *Server) Fail(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[path] = fault{status: status, body: body}
}

func (s *Server) Restore(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.faults, path)
}

// Hold blocks requests to path until the returned func is called.
func (s *Server) Hold(path string) (release func()) {
	ch := make(chan struct{})
	s.mu.Lock()
	s.holds[path] = ch
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.holds, path)
			s.mu.Unlock()
			close(ch)
		})
	}
}

// Hits reports how many requests reached path.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func (s *Server) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.URL.Path]++
		f, failing := s.faults[r.URL.Path]
		hold := s.holds[r.URL.Path]
		s.mu.Unlock()

		if hold != nil {
			select {
			case <-hold:
			case <-r.Context().Done():
				return
			}
		}

		if failing {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(f.body))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) sign(u *userRecord) (string, error) {
	id := u.ID
	claims := user.Claims{
		UserID:  &id,
		IsAdmin: u.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Server) verify(tokenStr string) (*user.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &user.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*user.Claims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

func (s *Server) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "
		header := r.Header.Get("Authorization")
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		claims, err := s.verify(header[len(prefix):])
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		u, ok := s.ledger.user(claims.Subject)
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, u)))
	})
}

func adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !currentUser(r).IsAdmin {
			writeDetail(w, http.StatusForbidden, "Admin privileges required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func currentUser(r *http.Request) *userRecord {
	u, _ := r.Context().Value(ctxKey{}).(*userRecord)
	return u
}

type credentialsBody struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var body credentialsBody
	if !decode(w, r, &body) {
		return
	}
	if missing := missingFields(map[string]bool{"username": body.Username == nil, "password": body.Password == nil}); missing != nil {
		writeJSON(w, http.StatusUnprocessableEntity, missing)
		return
	}

	u, err := s.ledger.addUser(*body.Username, *body.Password, false)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeToken(w, u)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var body credentialsBody
	if !decode(w, r, &body) {
		return
	}
	if missing := missingFields(map[string]bool{"username": body.Username == nil, "password": body.Password == nil}); missing != nil {
		writeJSON(w, http.StatusUnprocessableEntity, missing)
		return
	}

	u, err := s.ledger.authenticate(*body.Username, *body.Password)
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, err.Error())
		return
	}
	s.writeToken(w, u)
}

func (s *Server) writeToken(w http.ResponseWriter, u *userRecord) {
	token, err := s.sign(u)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "could not sign token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access_token": token, "token_type": "bearer"})
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, accountsOut(s.ledger.accountsOf(currentUser(r).ID)))
}

func (s *Server) listBeneficiaries(w http.ResponseWriter, r *http.Request) {
	out := []beneficiaryOut{}
	for _, b := range s.ledger.beneficiariesOf(currentUser(r).ID) {
		out = append(out, beneficiaryOut{ID: b.ID, Name: b.Name, IBAN: b.IBAN, Address: b.Address})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) addBeneficiary(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    *string `json:"name"`
		IBAN    *string `json:"iban"`
		Address *string `json:"address"`
	}
	if !decode(w, r, &body) {
		return
	}
	if missing := missingFields(map[string]bool{"name": body.Name == nil, "iban": body.IBAN == nil, "address": body.Address == nil}); missing != nil {
		writeJSON(w, http.StatusUnprocessableEntity, missing)
		return
	}

	b := s.ledger.addBeneficiary(currentUser(r).ID, *body.Name, *body.IBAN, *body.Address)
	writeJSON(w, http.StatusOK, beneficiaryOut{ID: b.ID, Name: b.Name, IBAN: b.IBAN, Address: b.Address})
}

func (s *Server) transfer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ToIBAN    string           `json:"to_iban"`
		ToAddress string           `json:"to_address"`
		Amount    *decimal.Decimal `json:"amount"`
	}
	if !decode(w, r, &body) {
		return
	}
	if body.Amount == nil {
		writeJSON(w, http.StatusUnprocessableEntity, missingFields(map[string]bool{"amount": true}))
		return
	}

	tx, err := s.ledger.transfer(currentUser(r).ID, body.ToIBAN, body.ToAddress, *body.Amount)
	switch {
	case errors.Is(err, errNoRecipient):
		writeDetail(w, http.StatusNotFound, err.Error())
	case err != nil:
		writeDetail(w, http.StatusBadRequest, err.Error())
	default:
		writeJSON(w, http.StatusOK, txOut(*tx))
	}
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	out := []transactionOut{}
	for _, tx := range s.ledger.transactionsOf(currentUser(r).ID, r.URL.Query().Get("period")) {
		out = append(out, txOut(tx))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) allAccounts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, accountsOut(s.ledger.allAccounts()))
}

func (s *Server) totalMoney(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]json.Number{"total_money": number(s.ledger.totalMoney())})
}

func (s *Server) totalTransferredToday(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]json.Number{"total_transferred_today": number(s.ledger.transferredToday())})
}

func (s *Server) accountByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationError("path", "account_id", "value is not a valid integer"))
		return
	}

	a, err := s.ledger.accountByID(id)
	if err != nil {
		writeDetail(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, accountOut(*a))
}

func (s *Server) createUserAccount(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username    *string `json:"username"`
		Password    *string `json:"password"`
		IsAdmin     bool    `json:"is_admin"`
		Name        *string `json:"name"`
		FatherName  *string `json:"father_name"`
		PhoneNumber *string `json:"phone_number"`
	}
	if !decode(w, r, &body) {
		return
	}
	if missing := missingFields(map[string]bool{
		"username":     body.Username == nil,
		"password":     body.Password == nil,
		"name":         body.Name == nil,
		"father_name":  body.FatherName == nil,
		"phone_number": body.PhoneNumber == nil,
	}); missing != nil {
		writeJSON(w, http.StatusUnprocessableEntity, missing)
		return
	}

	u, err := s.ledger.addUser(*body.Username, *body.Password, body.IsAdmin)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := s.ledger.openAccount(u.ID, *body.Name, *body.FatherName, *body.PhoneNumber, "", decimal.Zero); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": u.ID, "username": u.Username, "is_admin": u.IsAdmin})
}

func (s *Server) addMoney(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IBAN   *string          `json:"iban"`
		Amount *decimal.Decimal `json:"amount"`
	}
	if !decode(w, r, &body) {
		return
	}
	if missing := missingFields(map[string]bool{"iban": body.IBAN == nil, "amount": body.Amount == nil}); missing != nil {
		writeJSON(w, http.StatusUnprocessableEntity, missing)
		return
	}

	balance, err := s.ledger.addMoney(*body.IBAN, *body.Amount)
	if err != nil {
		writeDetail(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":     fmt.Sprintf("Added %s to account %s", body.Amount.String(), *body.IBAN),
		"new_balance": number(balance),
	})
}
