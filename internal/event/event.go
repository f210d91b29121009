package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Apiary_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version    string      `json:"version"` // Event schema version (e.g., "1.0")
	Type       Type        `json:"type"`
	Payload    interface{} `json:"payload"`
	Metadata   Metadata    `json:"metadata,omitempty"`
	OccurredAt time.Time   `json:"occurredAt"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Apiary event types
const (
	BeeHatched          Type = domain.EventTypeBeeHatched
	HivesFull           Type = domain.EventTypeHivesFull
	HoneyBatchCompleted Type = domain.EventTypeHoneyBatchCompleted
	HoneyBottled        Type = domain.EventTypeHoneyBottled
	HoneyOrderFulfilled Type = domain.EventTypeHoneyOrderFulfilled
	NectarBottled       Type = domain.EventTypeNectarBottled
	OrderGenerated      Type = domain.EventTypeOrderGenerated
	OrderFulfilled      Type = domain.EventTypeOrderFulfilled
	PlotHarvested       Type = domain.EventTypePlotHarvested
)

// AllTypes lists every event type the apiary publishes
func AllTypes() []Type {
	return []Type{
		BeeHatched, HivesFull, HoneyBatchCompleted, HoneyBottled, HoneyOrderFulfilled,
		NectarBottled, OrderGenerated, OrderFulfilled, PlotHarvested,
	}
}

// Typed event payloads

// BeeHatchedPayloadV1 carries the milestone award
type BeeHatchedPayloadV1 struct {
	Milestone    int    `json:"milestone"`
	BeesAwarded  int    `json:"bees_awarded"`
	TargetHiveID string `json:"target_hive_id"`
	Message      string `json:"message"`
}

// HivesFullPayloadV1 is sent when a milestone could not place any bees
type HivesFullPayloadV1 struct {
	Milestone int    `json:"milestone"`
	Message   string `json:"message"`
}

// HoneyBatchPayloadV1 describes a batch that completed or was bottled
type HoneyBatchPayloadV1 struct {
	HiveID      string           `json:"hive_id"`
	BatchID     string           `json:"batch_id"`
	Amount      float64          `json:"amount"`
	Quality     float64          `json:"quality"`
	Description string           `json:"description"`
	Jars        int              `json:"jars,omitempty"`
	HoneyType   domain.HoneyType `json:"honey_type,omitempty"`
}

// HoneyOrderPayloadV1 is a delivered honey order
type HoneyOrderPayloadV1 struct {
	OrderID     string           `json:"order_id"`
	Customer    string           `json:"customer"`
	HoneyType   domain.HoneyType `json:"honey_type"`
	Bottles     int              `json:"bottles"`
	CoinsEarned int              `json:"coins_earned"`
	Reduced     bool             `json:"reduced,omitempty"`
}

// NectarBottledPayloadV1 lists how much nectar each hive gave up
type NectarBottledPayloadV1 struct {
	Drawn         map[string]float64 `json:"drawn"`
	BottledNectar int                `json:"bottled_nectar"`
}

// OrderPayloadV1 summarizes an order for generated and fulfilled events
type OrderPayloadV1 struct {
	OrderID        string           `json:"order_id"`
	OrderType      domain.OrderType `json:"order_type"`
	MerchantID     string           `json:"merchant_id"`
	TotalReward    int              `json:"total_reward"`
	AffinityGained int              `json:"affinity_gained,omitempty"`
	NewAffinity    int              `json:"new_affinity,omitempty"`
}

// PlotHarvestedPayloadV1 is the harvest reward plus the new pollination factor
type PlotHarvestedPayloadV1 struct {
	PlotID            int    `json:"plot_id"`
	CropID            string `json:"crop_id"`
	Crops             int    `json:"crops"`
	Seeds             int    `json:"seeds"`
	PollinationFactor int    `json:"pollination_factor"`
}

// Type-safe event constructors

func newEvent(t Type, payload interface{}, at time.Time) Event {
	return Event{
		Version:    EventSchemaVersion,
		Type:       t,
		Payload:    payload,
		OccurredAt: at,
	}
}

// NewHatchEvent turns a hatch result into a bee.hatched or hives.full event.
// ok is false when the result carries nothing worth announcing.
func NewHatchEvent(r domain.HatchResult, at time.Time) (Event, bool) {
	switch {
	case r.NewBeesHatched > 0:
		return newEvent(BeeHatched, BeeHatchedPayloadV1{
			Milestone:    r.Milestone,
			BeesAwarded:  r.NewBeesHatched,
			TargetHiveID: r.TargetHiveID,
			Message:      r.Message,
		}, at), true
	case r.HivesFull:
		return newEvent(HivesFull, HivesFullPayloadV1{
			Milestone: r.Milestone,
			Message:   r.Message,
		}, at), true
	default:
		return Event{}, false
	}
}

// NewBatchCompletedEvent creates a honey.batch_completed event
func NewBatchCompletedEvent(hiveID string, b domain.HoneyBatch, at time.Time) Event {
	return newEvent(HoneyBatchCompleted, HoneyBatchPayloadV1{
		HiveID:      hiveID,
		BatchID:     b.ID,
		Amount:      b.Amount,
		Quality:     b.Quality,
		Description: b.Description,
	}, at)
}

// NewHoneyBottledEvent creates a honey.bottled event
func NewHoneyBottledEvent(r domain.BottleHoneyResult, at time.Time) Event {
	return newEvent(HoneyBottled, HoneyBatchPayloadV1{
		HiveID:      r.HiveID,
		BatchID:     r.Batch.ID,
		Amount:      r.Batch.Amount,
		Quality:     r.Batch.Quality,
		Description: r.Batch.Description,
		Jars:        r.Jars,
		HoneyType:   r.Type,
	}, at)
}

// NewHoneyOrderFulfilledEvent creates a honey_order.fulfilled event
func NewHoneyOrderFulfilledEvent(r domain.HoneyFulfillResult, at time.Time) Event {
	return newEvent(HoneyOrderFulfilled, HoneyOrderPayloadV1{
		OrderID:     r.Order.ID,
		Customer:    r.Order.Customer,
		HoneyType:   r.Order.HoneyType,
		Bottles:     r.Order.Bottles,
		CoinsEarned: r.CoinsEarned,
		Reduced:     r.Reduced,
	}, at)
}

// NewNectarBottledEvent creates a nectar.bottled event
func NewNectarBottledEvent(r domain.BottleNectarResult, at time.Time) Event {
	return newEvent(NectarBottled, NectarBottledPayloadV1{
		Drawn:         r.Drawn,
		BottledNectar: r.BottledNectar,
	}, at)
}

// NewOrderGeneratedEvent creates an order.generated event
func NewOrderGeneratedEvent(o domain.Order, at time.Time) Event {
	return newEvent(OrderGenerated, OrderPayloadV1{
		OrderID:     o.ID,
		OrderType:   o.Type,
		MerchantID:  o.MerchantID,
		TotalReward: o.TotalReward,
	}, at)
}

// NewOrderFulfilledEvent creates an order.fulfilled event
func NewOrderFulfilledEvent(r domain.FulfillResult, at time.Time) Event {
	return newEvent(OrderFulfilled, OrderPayloadV1{
		OrderID:        r.Order.ID,
		OrderType:      r.Order.Type,
		MerchantID:     r.Order.MerchantID,
		TotalReward:    r.CoinsEarned,
		AffinityGained: r.AffinityGained,
		NewAffinity:    r.NewAffinity,
	}, at)
}

// NewPlotHarvestedEvent creates a plot.harvested event
func NewPlotHarvestedEvent(plotID int, reward domain.HarvestReward, factor int, at time.Time) Event {
	return newEvent(PlotHarvested, PlotHarvestedPayloadV1{
		PlotID:            plotID,
		CropID:            reward.CropID,
		Crops:             reward.Crops,
		Seeds:             reward.Seeds,
		PollinationFactor: factor,
	}, at)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes handler to every apiary event type
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range AllTypes() {
		bus.Subscribe(t, handler)
	}
}
