package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Apiary_Go/internal/domain"
)

var testTime = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got []Event

	bus.Subscribe(OrderGenerated, func(ctx context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	order := domain.Order{ID: "order-1", Type: domain.OrderTypeCrop, MerchantID: "chef", TotalReward: 13}
	require.NoError(t, bus.Publish(context.Background(), NewOrderGeneratedEvent(order, testTime)))

	require.Len(t, got, 1)
	assert.Equal(t, EventSchemaVersion, got[0].Version)
	assert.Equal(t, testTime, got[0].OccurredAt)

	payload, err := DecodePayload[OrderPayloadV1](got[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "order-1", payload.OrderID)
	assert.Equal(t, 13, payload.TotalReward)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: HivesFull}))
}

func TestMemoryBus_MultipleHandlersAndErrors(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0

	bus.Subscribe(PlotHarvested, func(context.Context, Event) error {
		calls++
		return nil
	})
	bus.Subscribe(PlotHarvested, func(context.Context, Event) error {
		calls++
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: PlotHarvested})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encountered 1 errors")
	assert.Equal(t, 2, calls, "a failing handler does not stop the others")
}

func TestSubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]int{}

	SubscribeAll(bus, func(_ context.Context, e Event) error {
		seen[e.Type]++
		return nil
	})

	for _, typ := range AllTypes() {
		require.NoError(t, bus.Publish(context.Background(), Event{Type: typ}))
	}
	assert.Len(t, seen, 9)
}

func TestNewHatchEvent(t *testing.T) {
	tests := []struct {
		name     string
		result   domain.HatchResult
		wantOK   bool
		wantType Type
	}{
		{
			name:     "bees awarded",
			result:   domain.HatchResult{NewBeesHatched: 1, TargetHiveID: domain.DefaultHiveID, Milestone: 10},
			wantOK:   true,
			wantType: BeeHatched,
		},
		{
			name:     "hives full",
			result:   domain.HatchResult{HivesFull: true, Milestone: 20},
			wantOK:   true,
			wantType: HivesFull,
		},
		{
			name:   "nothing happened",
			result: domain.HatchResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := NewHatchEvent(tt.result, testTime)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantType, e.Type)
			}
		})
	}
}

func TestDecodePayload_FromMap(t *testing.T) {
	// payloads that went through JSON arrive as maps
	raw := map[string]interface{}{"hive_id": "default-hive", "jars": 10.0, "amount": 104.0}

	p, err := DecodePayload[HoneyBatchPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "default-hive", p.HiveID)
	assert.Equal(t, 10, p.Jars)
	assert.InDelta(t, 104.0, p.Amount, 1e-9)
}

func TestNewHoneyOrderFulfilledEvent(t *testing.T) {
	r := domain.HoneyFulfillResult{
		Order:       domain.HoneyOrder{ID: "honey-1", Customer: "Chef Rosa", HoneyType: domain.HoneyDark, Bottles: 2},
		CoinsEarned: 25,
		Reduced:     true,
	}

	e := NewHoneyOrderFulfilledEvent(r, testTime)

	assert.Equal(t, HoneyOrderFulfilled, e.Type)
	p, ok := e.Payload.(HoneyOrderPayloadV1)
	require.True(t, ok)
	assert.Equal(t, domain.HoneyDark, p.HoneyType)
	assert.Equal(t, 25, p.CoinsEarned)
	assert.True(t, p.Reduced)
}

func TestGetMetadataValue(t *testing.T) {
	e := Event{Metadata: Metadata{MetadataKeySource: "scheduler"}}
	assert.Equal(t, "scheduler", e.GetMetadataValue(MetadataKeySource))
	assert.Nil(t, Event{}.GetMetadataValue(MetadataKeySource))
}
