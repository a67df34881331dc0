package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type pingOutput struct {
	Status int
}

func newRouter(buf *bytes.Buffer, status int) *chi.Mux {
	log := slog.New(slog.NewJSONHandler(buf, nil))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	api := humachi.New(r, huma.DefaultConfig("test", "1.0.0"))
	api.UseMiddleware(New(log).Middleware())

	huma.Get(api, "/ping", func(_ context.Context, _ *struct{}) (*pingOutput, error) {
		return &pingOutput{Status: status}, nil
	})
	return r
}

func TestLogger_Middleware(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		header    string
		wantLevel string
	}{
		{name: "generated request id", status: http.StatusOK, wantLevel: "INFO"},
		{name: "caller request id", status: http.StatusOK, header: "abc-123", wantLevel: "INFO"},
		{name: "server error", status: http.StatusBadGateway, wantLevel: "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := newRouter(&buf, tt.status)

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(chimw.RequestIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "/ping", entry["path"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.Equal(t, "http_logger", entry["component"])

			id, _ := entry["request_id"].(string)
			assert.NotEmpty(t, id)
			if tt.header != "" {
				assert.Equal(t, tt.header, id)
			}
		})
	}
}
