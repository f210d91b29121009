package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Apiary_Go/internal/event"
	"github.com/osse101/Apiary_Go/internal/feed"
	"github.com/osse101/Apiary_Go/internal/metrics"
)

// InitializeEventSystem creates the event bus and registers its subscribers:
// the metrics collector and the live feed hub. The hub is already started.
func InitializeEventSystem() (event.Bus, *feed.Hub, error) {
	bus := event.NewMemoryBus()

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	hub := feed.NewHub()
	hub.Start()
	feed.NewSubscriber(hub, bus).Subscribe()

	slog.Info(LogMsgEventSystemInitialized, "subscribers", 2)
	return bus, hub, nil
}
