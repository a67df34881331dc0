package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"banker/internal/app/client/config"
	"banker/internal/app/client/credential"
	"banker/internal/domain/account"
	"banker/internal/domain/admin"
	"banker/internal/domain/failure"
	"banker/internal/domain/user"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *credential.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := credential.NewMemoryStore()
	cfg := &config.Config{ServerAddress: srv.URL, RequestTimeout: 5 * time.Second}
	return NewHTTPClient(cfg, store, slog.Default()), store
}

func TestHTTPClient_Headers(t *testing.T) {
	ctx := context.Background()
	var (
		mu   sync.Mutex
		seen []*http.Request
	)
	h, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Clone(context.Background()))
		mu.Unlock()
		switch r.URL.Path {
		case "/login":
			_, _ = w.Write([]byte(`{"access_token":"a.b.c","token_type":"bearer"}`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	})

	token, err := h.Login(ctx, user.BaseRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", token)

	_, err = h.Accounts(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "first"))
	_, err = h.Accounts(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "second"))
	_, err = h.Beneficiaries(ctx)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 4)
	assert.Empty(t, seen[0].Header.Get("Authorization"), "login is not authenticated")
	assert.Empty(t, seen[1].Header.Get("Authorization"), "no credential, no header")
	assert.Equal(t, "Bearer first", seen[2].Header.Get("Authorization"))
	assert.Equal(t, "Bearer second", seen[3].Header.Get("Authorization"))

	for _, r := range seen {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		_, err := uuid.Parse(r.Header.Get(requestIDHeader))
		assert.NoError(t, err)
	}
	assert.NotEqual(t, seen[0].Header.Get(requestIDHeader), seen[1].Header.Get(requestIDHeader))
}

func TestHTTPClient_ErrorDetail(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{name: "string detail", status: 401, body: `{"detail":"Incorrect username or password"}`, expected: "Incorrect username or password"},
		{
			name:     "validation list",
			status:   422,
			body:     `{"detail":[{"loc":["body","amount"],"msg":"field required","type":"value_error.missing"},{"loc":["body","iban"],"msg":"str type expected"}]}`,
			expected: "field required; str type expected",
		},
		{name: "no detail", status: 500, body: `Internal Server Error`, expected: failure.GenericMessage},
		{name: "object detail", status: 400, body: `{"detail":{"code":1}}`, expected: failure.GenericMessage},
		{name: "empty body", status: 403, body: ``, expected: failure.GenericMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := h.Accounts(context.Background())

			var apiErr *failure.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.expected, apiErr.Error())
		})
	}
}

func TestHTTPClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	cfg := &config.Config{ServerAddress: srv.URL, RequestTimeout: time.Second}
	srv.Close()
	h := NewHTTPClient(cfg, credential.NewMemoryStore(), slog.Default())

	_, err := h.Login(context.Background(), user.BaseRequest{Username: "a", Password: "b"})

	assert.ErrorIs(t, err, failure.ErrTransport)
}

func TestHTTPClient_MalformedBody(t *testing.T) {
	h, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"oops"`))
	})

	_, err := h.Transactions(context.Background(), account.PeriodAll)

	assert.ErrorIs(t, err, failure.ErrTransport)
}

func TestHTTPClient_Transactions(t *testing.T) {
	queries := make(chan string, 2)
	h, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		queries <- r.URL.RawQuery
		_, _ = w.Write([]byte(`[{"id":1,"type":"send","amount":50.0,"timestamp":"2024-05-01T09:30:00.000123","to_iban":"AB123","to_address":null}]`))
	})

	txs, err := h.Transactions(context.Background(), account.PeriodDaily)

	require.NoError(t, err)
	assert.Equal(t, "period=daily", <-queries)
	require.Len(t, txs, 1)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 30, 0, 123000, time.UTC), txs[0].Timestamp.Time)
	assert.True(t, txs[0].Amount.Equal(decimal.NewFromInt(50)))

	_, err = h.Transactions(context.Background(), account.PeriodAll)
	require.NoError(t, err)
	assert.Empty(t, <-queries)
}

func TestHTTPClient_TransferBody(t *testing.T) {
	bodies := make(chan map[string]any, 1)
	h, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transfer", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(raw, &body))
		bodies <- body
		_, _ = w.Write([]byte(`{"id":7,"type":"send","amount":12.5,"timestamp":"2024-05-01T09:30:00"}`))
	})

	resp, err := h.Transfer(context.Background(), account.TransferRequest{ToIBAN: "AB1", Amount: json.Number("12.5")})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Empty(t, resp.Message)
	assert.Equal(t, map[string]any{"to_iban": "AB1", "amount": 12.5}, <-bodies)
}

func TestHTTPClient_AdminEndpoints(t *testing.T) {
	h, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/total_money":
			_, _ = w.Write([]byte(`{"total_money":175.5}`))
		case "/admin/total_transferred_today":
			_, _ = w.Write([]byte(`{"total_transferred_today":0}`))
		case "/admin/account/3":
			_, _ = w.Write([]byte(`{"id":3,"user_id":4,"name":"Eve","father_name":"Adam","phone_number":"1","iban":"AB3","address":"CR3","balance":10.25}`))
		case "/admin/add_money":
			_, _ = w.Write([]byte(`{"message":"Added 1.0 to account AB3","new_balance":11.25}`))
		case "/admin/create_user_account":
			_, _ = w.Write([]byte(`{"id":9,"username":"eve","is_admin":false}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
		}
	})
	ctx := context.Background()

	total, err := h.TotalMoney(ctx)
	require.NoError(t, err)
	assert.Equal(t, "175.5", total.String())

	today, err := h.TotalTransferredToday(ctx)
	require.NoError(t, err)
	assert.True(t, today.IsZero())

	acc, err := h.Account(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Eve", acc.OwnerName)
	assert.Equal(t, "CR3", acc.CryptoAddress)

	added, err := h.AddMoney(ctx, admin.AddMoneyRequest{IBAN: "AB3", Amount: "1"})
	require.NoError(t, err)
	assert.Equal(t, "Added 1.0 to account AB3", added.Message)

	created, err := h.CreateUserAccount(ctx, admin.CreateUserRequest{Username: "eve"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)

	_, err = h.Account(ctx, 99)
	assert.EqualError(t, err, "Not Found")
}
