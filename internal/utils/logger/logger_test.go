package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{name: "local environment", env: EnvLocal, expectedLevel: slog.LevelDebug},
		{name: "empty environment", env: "", expectedLevel: slog.LevelDebug},
		{name: "dev environment", env: EnvDev, expectedLevel: slog.LevelDebug},
		{name: "prod environment", env: EnvProd, expectedLevel: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestNewWithLevel(t *testing.T) {
	ctx := context.Background()

	// явный уровень важнее окружения
	assert.True(t, NewWithLevel(EnvProd, "debug").Enabled(ctx, slog.LevelDebug))
	assert.False(t, NewWithLevel(EnvLocal, "warn").Enabled(ctx, slog.LevelInfo))

	// неизвестный уровень ведёт себя как New
	assert.False(t, NewWithLevel(EnvProd, "loud").Enabled(ctx, slog.LevelDebug))
}

func TestSetupPrettySlog(t *testing.T) {
	logger := setupPrettySlog()
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
}

func TestPrettyHandler_Output(t *testing.T) {
	var buf bytes.Buffer
	h := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo}}.NewPrettyHandler(&buf)
	logger := slog.New(h).With(slog.String("component", "session"))

	logger.Debug("hidden")
	logger.Info("logged in", slog.String("subject", "alice"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "logged in")
	assert.Contains(t, out, `"component": "session"`)
	assert.Contains(t, out, `"subject": "alice"`)
}
