// Локальный HTTP-шлюз к банковскому клиенту: поднимает ту же сессию,
// что и CLI, и отдает экраны в виде JSON.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"banker/internal/app/client"
	"banker/internal/app/client/config"
	"banker/internal/app/server/api"
	"banker/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.MustLoad()
	log := logger.NewWithLevel(cfg.Env, cfg.LogLevel)

	app, err := client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("init client: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn("close client", slog.String("error", err.Error()))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	state := app.Init(ctx)
	if err := app.CheckConnection(ctx); err != nil {
		log.Warn("backend unreachable", slog.String("server", cfg.BaseURL()), slog.String("error", err.Error()))
	}

	srv := &http.Server{
		Addr:              cfg.WebAddress,
		Handler:           api.New(app, cfg, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("gateway started",
			slog.String("addr", cfg.WebAddress),
			slog.String("backend", cfg.BaseURL()),
			slog.String("session", state.String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
