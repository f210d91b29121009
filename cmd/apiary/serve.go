package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/Apiary_Go/internal/bootstrap"
	"github.com/osse101/Apiary_Go/internal/config"
	"github.com/osse101/Apiary_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server and the periodic tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "detail", w)
	}

	app, err := bootstrap.NewApp(ctx, cfg)
	if err != nil {
		return err
	}

	sched, pool := bootstrap.ScheduleTasks(app.Service, app.Tuning)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		PlayerID:       cfg.PlayerID,
		Clock:          app.Clock,
		Ready:          app.Store.Ready,
		Guard: server.GuardConfig{
			AuthAlertThreshold: cfg.AuthAlertThreshold,
			RateLimit:          cfg.RateLimit,
			Window:             cfg.RateWindow,
		},
	}, app.Service, app.Hub)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var serveErr error
	select {
	case <-stop:
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Pool:      pool,
		Store:     app.Store,
	})
	return serveErr
}
