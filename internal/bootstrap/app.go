package bootstrap

import (
	"context"
	"time"

	"github.com/osse101/Apiary_Go/internal/apiary"
	"github.com/osse101/Apiary_Go/internal/clock"
	"github.com/osse101/Apiary_Go/internal/config"
	"github.com/osse101/Apiary_Go/internal/event"
	"github.com/osse101/Apiary_Go/internal/feed"
	"github.com/osse101/Apiary_Go/internal/weather"
)

// App is the wired application shared by the CLI commands
type App struct {
	Config  *config.Config
	Store   *Store
	Bus     event.Bus
	Hub     *feed.Hub
	Tuning  config.Tuning
	Clock   clock.Clock
	Service apiary.Service
}

// NewApp opens the store, loads the catalog and builds the apiary service.
// The caller owns Close.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	registry, tuning, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bus, hub, err := InitializeEventSystem()
	if err != nil {
		store.Close()
		return nil, err
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	c := clock.System{}
	svc := apiary.NewService(apiary.Deps{
		Store:   store.Store,
		Bus:     bus,
		Clock:   c,
		Rand:    clock.NewRand(seed),
		Crops:   registry,
		Weather: weather.New(cfg.WeatherSource, int64(seed)),
		Tuning:  tuning,
	})

	return &App{
		Config:  cfg,
		Store:   store,
		Bus:     bus,
		Hub:     hub,
		Tuning:  tuning,
		Clock:   c,
		Service: svc,
	}, nil
}

// Close stops the feed hub and releases the store
func (a *App) Close() error {
	a.Hub.Stop()
	return a.Store.Close()
}
