package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Apiary_Go/internal/scheduler"
	"github.com/osse101/Apiary_Go/internal/server"
	"github.com/osse101/Apiary_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Store     *Store
}

// GracefulShutdown stops the application in order:
// 1. HTTP server and live feeds (stop accepting new requests)
// 2. Scheduler tickers, then the worker pool (finish the in-flight task)
// 3. Store (after the last write)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgStoppingScheduler)
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
