package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"banker/internal/app/client"
	"banker/internal/app/client/config"
	"banker/internal/app/client/credential"
	"banker/internal/banktest"
)

type gateway struct {
	srv *banktest.Server
	mux *chi.Mux
}

func newGateway(t *testing.T) *gateway {
	t.Helper()

	srv := banktest.NewServer(t)
	alice := srv.SeedUser(t, "alice", "wonderland", false)
	srv.SeedAccount(t, alice, "Alice", "AB000000000001", "100")
	bob := srv.SeedUser(t, "bob", "builder", false)
	srv.SeedAccount(t, bob, "Bob", "AB000000000002", "0")
	srv.SeedUser(t, "root", "toor", true)

	cfg := &config.Config{
		ServerAddress:     srv.URL,
		CredentialBackend: config.BackendMemory,
		RequestTimeout:    5 * time.Second,
		AllowedOrigins:    []string{"http://localhost:3000"},
	}
	app := client.NewWithStore(cfg, credential.NewMemoryStore(), slog.Default())
	app.Init(context.Background())

	return &gateway{srv: srv, mux: New(app, cfg, slog.Default())}
}

func (g *gateway) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	g.mux.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (g *gateway) login(t *testing.T, username, password string) {
	t.Helper()
	rec := g.do(t, http.MethodPost, "/api/v1/login", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestGateway_Health(t *testing.T) {
	g := newGateway(t)

	rec := g.do(t, http.MethodGet, "/api/v1/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "up", decode(t, rec)["backend"])
}

func TestGateway_AnonymousIsSentToLogin(t *testing.T) {
	g := newGateway(t)

	for _, path := range []string{"/api/v1/", "/api/v1/user/dashboard", "/api/v1/admin/dashboard"} {
		rec := g.do(t, http.MethodGet, path, nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/api/v1/login", rec.Header().Get("Location"), path)
		assert.Equal(t, "login", decode(t, rec)["redirect_to"], path)
	}

	rec := g.do(t, http.MethodGet, "/api/v1/session", nil)
	assert.Equal(t, "anonymous", decode(t, rec)["state"])
}

func TestGateway_UserFlow(t *testing.T) {
	g := newGateway(t)

	rec := g.do(t, http.MethodPost, "/api/v1/login", map[string]string{"username": "alice", "password": "wonderland"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "user_dashboard", decode(t, rec)["redirect_to"])

	rec = g.do(t, http.MethodGet, "/api/v1/", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/api/v1/user/dashboard", rec.Header().Get("Location"))

	rec = g.do(t, http.MethodGet, "/api/v1/login", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/api/v1/user/dashboard", rec.Header().Get("Location"))

	rec = g.do(t, http.MethodGet, "/api/v1/admin/dashboard", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/api/v1/user/dashboard", rec.Header().Get("Location"))

	rec = g.do(t, http.MethodGet, "/api/v1/user/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	acc := decode(t, rec)["account"].(map[string]any)
	assert.Equal(t, "AB000000000001", acc["iban"])
	assert.Equal(t, "100", acc["balance"])

	rec = g.do(t, http.MethodPost, "/api/v1/user/transfer", map[string]string{"to_iban": "AB000000000002", "amount": "50"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "Transfer successful!", body["message"])
	dash := body["dashboard"].(map[string]any)
	assert.Equal(t, "50", dash["account"].(map[string]any)["balance"])
	assert.Len(t, dash["recent_transactions"], 1)

	rec = g.do(t, http.MethodGet, "/api/v1/user/transactions?period=daily", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = g.do(t, http.MethodDelete, "/api/v1/session", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", decode(t, rec)["state"])
}

func TestGateway_TransferRejected(t *testing.T) {
	g := newGateway(t)
	g.login(t, "alice", "wonderland")

	rec := g.do(t, http.MethodPost, "/api/v1/user/transfer", map[string]string{"to_iban": "AB000000000002", "amount": "500"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Insufficient funds or account not found", decode(t, rec)["detail"])
}

func TestGateway_LoginFailed(t *testing.T) {
	g := newGateway(t)

	rec := g.do(t, http.MethodPost, "/api/v1/login", map[string]string{"username": "alice", "password": "nope"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decode(t, rec)["detail"])
}

func TestGateway_LoginBackendDown(t *testing.T) {
	g := newGateway(t)
	g.srv.Close()

	rec := g.do(t, http.MethodPost, "/api/v1/login", map[string]string{"username": "alice", "password": "wonderland"})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Login failed", decode(t, rec)["detail"])

	rec = g.do(t, http.MethodPost, "/api/v1/login", map[string]string{"username": "  ", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGateway_Register(t *testing.T) {
	g := newGateway(t)

	rec := g.do(t, http.MethodPost, "/api/v1/register", map[string]string{
		"username": "dave", "password": "pw", "confirm_password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = g.do(t, http.MethodPost, "/api/v1/register", map[string]string{
		"username": "dave", "password": "pw", "confirm_password": "pw",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "login", decode(t, rec)["redirect_to"])

	rec = g.do(t, http.MethodGet, "/api/v1/session", nil)
	assert.Equal(t, "anonymous", decode(t, rec)["state"])
}

func TestGateway_AdminFlow(t *testing.T) {
	g := newGateway(t)
	g.login(t, "root", "toor")

	rec := g.do(t, http.MethodGet, "/api/v1/user/dashboard", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/api/v1/admin/dashboard", rec.Header().Get("Location"))

	rec = g.do(t, http.MethodGet, "/api/v1/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Len(t, body["accounts"], 2)
	assert.Equal(t, "100", body["total_money"])

	rec = g.do(t, http.MethodPost, "/api/v1/admin/add-money", map[string]string{"iban": "AB000000000002", "amount": "25.50"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Added 25.5 to account AB000000000002", decode(t, rec)["message"])

	rec = g.do(t, http.MethodPost, "/api/v1/admin/add-money", map[string]string{"iban": "AB000000000002", "amount": "-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = g.do(t, http.MethodGet, "/api/v1/admin/accounts/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = g.do(t, http.MethodPost, "/api/v1/admin/users", map[string]string{
		"username": "carol", "password": "pw", "name": "Carol", "father_name": "Carl", "phone_number": "1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Len(t, decode(t, rec)["dashboard"].(map[string]any)["accounts"], 3)
}

func TestGateway_SnapshotFailure(t *testing.T) {
	g := newGateway(t)
	g.login(t, "alice", "wonderland")
	g.srv.Fail("/transactions", http.StatusInternalServerError, `{"detail":"db down"}`)

	rec := g.do(t, http.MethodGet, "/api/v1/user/dashboard", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Failed to fetch data", decode(t, rec)["detail"])
}

func TestGateway_CORS(t *testing.T) {
	g := newGateway(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/session", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	g.mux.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
