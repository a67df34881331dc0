package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"banker/internal/app/client/config"
	"banker/internal/domain/account"
	"banker/internal/domain/admin"
	"banker/internal/domain/failure"
	"banker/internal/domain/user"
)

const (
	userAgent       = "banker-client/1.0"
	requestIDHeader = "X-Request-ID"
)

// TokenSource yields the current bearer credential. It is consulted on
// every authenticated call.
type TokenSource interface {
	Read(ctx context.Context) (string, bool, error)
}

// HTTPClient talks to the banking backend.
type HTTPClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	tokens    TokenSource
	userAgent string
}

func NewHTTPClient(cfg *config.Config, tokens TokenSource, log *slog.Logger) *HTTPClient {
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &HTTPClient{
		client:    client,
		log:       log.With(slog.String("component", "http_client")),
		baseURL:   cfg.BaseURL(),
		tokens:    tokens,
		userAgent: userAgent,
	}
}

// HealthCheck checks that the backend answers.
func (h *HTTPClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/", nil, false)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *HTTPClient) Login(ctx context.Context, req user.BaseRequest) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/login", req, false)
	if err != nil {
		return "", err
	}

	var loginResp user.LoginResponse
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	return loginResp.AccessToken, nil
}

func (h *HTTPClient) Register(ctx context.Context, req user.BaseRequest) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/register", req, false)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *HTTPClient) Accounts(ctx context.Context) ([]account.Account, error) {
	var accounts []account.Account
	if err := h.get(ctx, "/accounts", &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (h *HTTPClient) Beneficiaries(ctx context.Context) ([]account.Beneficiary, error) {
	var beneficiaries []account.Beneficiary
	if err := h.get(ctx, "/beneficiaries", &beneficiaries); err != nil {
		return nil, err
	}
	return beneficiaries, nil
}

func (h *HTTPClient) Transactions(ctx context.Context, period account.Period) ([]account.Transaction, error) {
	path := "/transactions"
	if period != account.PeriodAll {
		path += "?" + url.Values{"period": {string(period)}}.Encode()
	}

	var txs []account.Transaction
	if err := h.get(ctx, path, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (h *HTTPClient) Transfer(ctx context.Context, req account.TransferRequest) (account.TransferResponse, error) {
	var out account.TransferResponse
	err := h.post(ctx, "/transfer", req, &out)
	return out, err
}

func (h *HTTPClient) AddBeneficiary(ctx context.Context, req account.BeneficiaryInput) (*account.Beneficiary, error) {
	var out account.Beneficiary
	if err := h.post(ctx, "/beneficiaries", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *HTTPClient) AllAccounts(ctx context.Context) ([]account.Account, error) {
	var accounts []account.Account
	if err := h.get(ctx, "/admin/all_accounts", &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (h *HTTPClient) TotalMoney(ctx context.Context) (decimal.Decimal, error) {
	var out struct {
		TotalMoney decimal.Decimal `json:"total_money"`
	}
	err := h.get(ctx, "/admin/total_money", &out)
	return out.TotalMoney, err
}

func (h *HTTPClient) TotalTransferredToday(ctx context.Context) (decimal.Decimal, error) {
	var out struct {
		Total decimal.Decimal `json:"total_transferred_today"`
	}
	err := h.get(ctx, "/admin/total_transferred_today", &out)
	return out.Total, err
}

func (h *HTTPClient) Account(ctx context.Context, id int64) (*account.Account, error) {
	var out account.Account
	if err := h.get(ctx, "/admin/account/"+strconv.FormatInt(id, 10), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *HTTPClient) CreateUserAccount(ctx context.Context, req admin.CreateUserRequest) (*admin.CreatedUser, error) {
	var out admin.CreatedUser
	if err := h.post(ctx, "/admin/create_user_account", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *HTTPClient) AddMoney(ctx context.Context, req admin.AddMoneyRequest) (admin.AddMoneyResponse, error) {
	var out admin.AddMoneyResponse
	err := h.post(ctx, "/admin/add_money", req, &out)
	return out, err
}

func (h *HTTPClient) get(ctx context.Context, path string, result any) error {
	resp, err := h.doRequest(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, result)
}

func (h *HTTPClient) post(ctx context.Context, path string, body, result any) error {
	resp, err := h.doRequest(ctx, http.MethodPost, path, body, true)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, result)
}

func (h *HTTPClient) doRequest(ctx context.Context, method, path string, body any, auth bool) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if auth && h.tokens != nil {
		token, ok, err := h.tokens.Read(ctx)
		if err != nil {
			return nil, fmt.Errorf("read credential: %w", err)
		}
		if ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Debug("request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
		)
		return nil, failure.Transport(err)
	}

	h.log.Debug("request done",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.String("request_id", requestID),
		slog.Duration("duration", time.Since(start)),
	)

	return resp, nil
}

func (h *HTTPClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure.Transport(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode >= 400 {
		return &failure.APIError{Status: resp.StatusCode, Detail: parseDetail(body)}
	}

	if result != nil && len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return failure.Transport(fmt.Errorf("decode response: %w", err))
		}
	}

	return nil
}

// parseDetail pulls the user-facing message out of an error body. Both a
// plain {"detail": "..."} and a validation list {"detail": [{"msg": ...}]}
// are understood.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			switch {
			case item.Msg != "":
				msgs = append(msgs, item.Msg)
			case item.Message != "":
				msgs = append(msgs, item.Message)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}
