package logger

import (
	"os"
	"strings"

	"golang.org/x/exp/slog"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// New builds the process logger for env: pretty text for local runs,
// JSON everywhere else. Only prod drops debug records.
func New(env string) *slog.Logger {
	switch env {
	case EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return setupPrettySlog()
	}
}

// NewWithLevel is New with an explicit level taking precedence when set.
func NewWithLevel(env, level string) *slog.Logger {
	lvl, ok := ParseLevel(level)
	if !ok {
		return New(env)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch env {
	case EnvDev, EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	default:
		return slog.New(PrettyHandlerOptions{SlogOpts: opts}.NewPrettyHandler(os.Stderr))
	}
}

// ParseLevel understands debug, info, warn and error.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

func setupPrettySlog() *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}
	return slog.New(opts.NewPrettyHandler(os.Stderr))
}
