// Package apiary is the facade over the farming, hive, honey and order packages.
// It owns the in-memory state, serializes every operation and persists the keys each operation changes.
package apiary

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Apiary_Go/internal/classification"
	"github.com/osse101/Apiary_Go/internal/clock"
	"github.com/osse101/Apiary_Go/internal/config"
	"github.com/osse101/Apiary_Go/internal/crop"
	"github.com/osse101/Apiary_Go/internal/domain"
	"github.com/osse101/Apiary_Go/internal/event"
	"github.com/osse101/Apiary_Go/internal/hive"
	"github.com/osse101/Apiary_Go/internal/honey"
	"github.com/osse101/Apiary_Go/internal/logger"
	"github.com/osse101/Apiary_Go/internal/order"
	"github.com/osse101/Apiary_Go/internal/plot"
	"github.com/osse101/Apiary_Go/internal/storage"
	"github.com/osse101/Apiary_Go/internal/weather"
)

// Service defines the apiary operations
type Service interface {
	// State returns a read-only snapshot of everything the player owns
	State(ctx context.Context) (*State, error)
	// Reload drops the in-memory state so the next call reads the store again
	Reload(ctx context.Context)

	TillPlot(ctx context.Context, plotID int) (domain.Plot, error)
	PlantSeed(ctx context.Context, plotID int, cropID string) (domain.Plot, error)
	WaterPlot(ctx context.Context, plotID int) (domain.Plot, error)
	HarvestPlot(ctx context.Context, plotID int) (*HarvestResult, error)
	ClearPlot(ctx context.Context, plotID int) (domain.Plot, error)

	BuildHive(ctx context.Context) (domain.Hive, error)
	BottleHoney(ctx context.Context, hiveID string) (domain.BottleHoneyResult, error)
	BottleNectar(ctx context.Context) (domain.BottleNectarResult, error)
	CheckForBeeHatching(ctx context.Context, score int) (domain.HatchResult, error)
	Classify(ctx context.Context, hiveID, label string) (domain.Classification, error)

	CheckAndGenerateOrders(ctx context.Context) (domain.OrderGenerationResult, error)
	ActiveOrders(ctx context.Context) ([]domain.Order, error)
	FulfillOrder(ctx context.Context, orderID string) (domain.FulfillResult, error)
	HoneyOrders(ctx context.Context) (domain.HoneyOrderBoard, error)
	FulfillHoneyOrder(ctx context.Context, orderID string) (domain.HoneyFulfillResult, error)

	CurrentWeather(ctx context.Context) *domain.Weather
	ComputePollinatorQuality(ctx context.Context, w *domain.Weather, season domain.Season) (domain.PollinatorQuality, error)
	Crops() []domain.CropDefinition

	TickPlots(ctx context.Context) error
	TickHiveNectar(ctx context.Context) error
	RunPollinationCycle(ctx context.Context) error
	RefillWater(ctx context.Context) error
}

// Deps are the collaborators a Service needs. Store and Crops are required.
type Deps struct {
	Store   storage.Store
	Bus     event.Bus
	Clock   clock.Clock
	Rand    clock.Rand
	Crops   *crop.Registry
	Weather weather.Feed
	Tuning  config.Tuning
}

// arena is the owned in-memory copy of every persisted key. cursor rotates
// nectar events across hives from one pollination cycle to the next.
type arena struct {
	plots        []domain.Plot
	inventory    *domain.Inventory
	water        domain.WaterSystem
	hives        []domain.Hive
	nectarLevels map[string]float64
	pollination  domain.PollinationFactor
	milestones   []domain.PollinationMilestone
	orders       []domain.Order
	affinity     map[string]int
	lastOrderGen *time.Time
	daily        *domain.DailyClassifications
	history      []domain.Classification
	experience   domain.Experience
	cursor       int
	honeyOrders  *domain.HoneyOrderBoard
}

type service struct {
	mu sync.Mutex

	store      storage.Store
	bus        event.Bus
	clock      clock.Clock
	crops      *crop.Registry
	feed       weather.Feed
	tuning     config.Tuning
	machine    *plot.Machine
	ledger     *hive.Ledger
	blender    *honey.Blender
	economy    *order.Economy
	honeyBoard *order.HoneyBoard
	gate       *classification.Gate
	source     *crop.NectarSource
	day        hive.Daylight

	loaded bool
	state  arena

	lastPlotTick   time.Time
	lastNectarTick time.Time
}

// NewService creates a new apiary service
func NewService(deps Deps) Service {
	if deps.Clock == nil {
		deps.Clock = clock.System{}
	}
	if deps.Rand == nil {
		deps.Rand = clock.NewRand(0)
	}
	if deps.Crops == nil {
		deps.Crops = crop.DefaultRegistry()
	}
	if deps.Weather == nil {
		deps.Weather = weather.Neutral{}
	}
	t := deps.Tuning

	now := deps.Clock.Now()
	return &service{
		store:   deps.Store,
		bus:     deps.Bus,
		clock:   deps.Clock,
		crops:   deps.Crops,
		feed:    deps.Weather,
		tuning:  t,
		machine: plot.NewMachine(deps.Clock, deps.Crops, t.WaterInterval),
		ledger:  hive.NewLedger(deps.Clock, t.DefaultHiveCapacity, t.MilestoneInterval, t.HiveCost),
		blender: honey.NewBlender(deps.Clock, deps.Crops, t.BatchThreshold, t.HoneyConversion),
		economy: order.NewEconomy(deps.Clock, deps.Rand, deps.Crops, order.NewDirectory(), order.Config{
			MaxActive:         t.MaxActiveOrders,
			TTL:               t.OrderTTL,
			NectarChance:      t.NectarOrderChance,
			GroupChance:       t.GroupOrderChance,
			NectarBottlePrice: t.NectarOrderPrice,
		}),
		honeyBoard: order.NewHoneyBoard(deps.Clock, deps.Rand, order.HoneyConfig{
			PerDay:           t.HoneyOrdersPerDay,
			QuotaPerType:     t.HoneyOrderQuota,
			ReductionPercent: t.HoneyOrderReduction,
		}),
		gate:           classification.NewGate(deps.Clock, classification.DefaultMaxPerHive, classification.DefaultHistoryCap),
		source:         crop.NewNectarSource(deps.Crops),
		day:            hive.Daylight{StartHour: t.DaylightStart, EndHour: t.DaylightEnd},
		lastPlotTick:   now,
		lastNectarTick: now,
	}
}

// StarterInventory is the inventory of a brand new player
func StarterInventory() *domain.Inventory {
	inv := domain.NewInventory()
	inv.Coins = StarterCoins
	for _, id := range StarterCrops {
		inv.Seeds[id] = StarterSeeds
	}
	inv.Items[domain.ItemGlassBottle] = StarterBottles
	return inv
}

// Reload drops the in-memory state so the next call reads the store again
func (s *service) Reload(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	logger.FromContext(ctx).Debug(LogMsgStateReload)
}

// ensureLoaded reads every key once. Read failures fall back to fresh defaults.
// Callers must hold s.mu.
func (s *service) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	now := s.clock.Now()
	st := arena{
		plots:        storage.LoadJSON[[]domain.Plot](ctx, s.store, storage.KeyPlots, nil),
		inventory:    storage.LoadJSON[*domain.Inventory](ctx, s.store, storage.KeyInventory, nil),
		water:        storage.LoadJSON(ctx, s.store, storage.KeyWaterSystem, plot.NewWaterSystem(s.tuning.WaterMax, now)),
		hives:        storage.LoadJSON[[]domain.Hive](ctx, s.store, storage.KeyHives, nil),
		nectarLevels: storage.LoadJSON[map[string]float64](ctx, s.store, storage.KeyHiveNectarLevels, nil),
		pollination:  storage.LoadJSON(ctx, s.store, storage.KeyPollinationFactor, hive.NewPollinationFactor(s.tuning.MilestoneInterval)),
		milestones:   storage.LoadJSON[[]domain.PollinationMilestone](ctx, s.store, storage.KeyPollinationMilestones, nil),
		orders:       storage.LoadJSON[[]domain.Order](ctx, s.store, storage.KeyActiveOrders, nil),
		affinity:     storage.LoadJSON[map[string]int](ctx, s.store, storage.KeyMerchantAffinity, nil),
		lastOrderGen: storage.LoadJSON[*time.Time](ctx, s.store, storage.KeyLastOrderGeneration, nil),
		daily:        storage.LoadJSON[*domain.DailyClassifications](ctx, s.store, storage.KeyDailyClassifications, nil),
		history:      storage.LoadJSON[[]domain.Classification](ctx, s.store, storage.KeyClassificationHistory, nil),
		experience:   storage.LoadJSON(ctx, s.store, storage.KeyUserExperience, domain.Experience{}),
		cursor:       storage.LoadJSON(ctx, s.store, storage.KeyPollinationCursor, 0),
		honeyOrders:  storage.LoadJSON[*domain.HoneyOrderBoard](ctx, s.store, storage.KeyHoneyOrders, nil),
	}

	if len(st.plots) == 0 {
		st.plots = plot.NewPlots(plot.DefaultPlotCount)
	}
	if st.inventory == nil {
		st.inventory = StarterInventory()
	}
	st.inventory.Normalize()
	if len(st.hives) == 0 {
		st.hives = s.ledger.DefaultHives()
	}
	if st.cursor < 0 {
		st.cursor = 0
	}
	if st.nectarLevels == nil {
		st.nectarLevels = make(map[string]float64)
	}
	defaults := s.economy.Directory().DefaultAffinity()
	if st.affinity == nil {
		st.affinity = defaults
	}
	for id, v := range defaults {
		if _, ok := st.affinity[id]; !ok {
			st.affinity[id] = v
		}
	}

	s.state = st
	s.loaded = true
	logger.FromContext(ctx).Info(LogMsgStateLoaded,
		"plots", len(st.plots), "hives", len(st.hives), "orders", len(st.orders))
}

// persist writes the changed keys together. A failure is logged and the in-memory state is kept.
func (s *service) persist(ctx context.Context, changed map[string]any) {
	if len(changed) == 0 {
		return
	}
	if err := storage.SaveAllJSON(ctx, s.store, changed); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPersistFailed, "error", err)
	}
}

// publish sends events to the bus, tagging them with the request id when there is one
func (s *service) publish(ctx context.Context, events ...event.Event) {
	if s.bus == nil {
		return
	}
	requestID, hasRequestID := logger.RequestIDFromContext(ctx)
	for _, evt := range events {
		if hasRequestID {
			if evt.Metadata == nil {
				evt.Metadata = event.Metadata{}
			}
			evt.Metadata[event.MetadataKeyRequestID] = requestID
		}
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}
}

// CurrentWeather reads the feed. A failing feed degrades to nil, the neutral weather.
func (s *service) CurrentWeather(ctx context.Context) *domain.Weather {
	w, err := s.feed.Current(ctx, s.clock.Now())
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgWeatherUnavailable, "error", err)
		return nil
	}
	return w
}

// Crops lists the crop catalog
func (s *service) Crops() []domain.CropDefinition {
	return s.crops.All()
}
