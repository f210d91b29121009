package metrics

import (
	"context"

	"github.com/osse101/Apiary_Go/internal/event"
	"github.com/osse101/Apiary_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all apiary events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := record(evt); err != nil {
		// a bad payload must not fail the publisher
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func record(evt event.Event) error {
	switch evt.Type {
	case event.PlotHarvested:
		p, err := event.DecodePayload[event.PlotHarvestedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		Harvests.WithLabelValues(p.CropID).Inc()

	case event.BeeHatched:
		p, err := event.DecodePayload[event.BeeHatchedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		BeesHatched.Add(float64(p.BeesAwarded))

	case event.HivesFull:
		HivesFull.Inc()

	case event.HoneyBatchCompleted:
		HoneyBatchesCompleted.Inc()

	case event.HoneyBottled:
		p, err := event.DecodePayload[event.HoneyBatchPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		HoneyJarsBottled.Add(float64(p.Jars))

	case event.HoneyOrderFulfilled:
		p, err := event.DecodePayload[event.HoneyOrderPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		HoneyOrdersFulfilled.WithLabelValues(string(p.HoneyType)).Inc()
		CoinsEarned.Add(float64(p.CoinsEarned))

	case event.NectarBottled:
		p, err := event.DecodePayload[event.NectarBottledPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		NectarBottled.Add(float64(p.BottledNectar))

	case event.OrderGenerated:
		p, err := event.DecodePayload[event.OrderPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		OrdersGenerated.WithLabelValues(string(p.OrderType)).Inc()

	case event.OrderFulfilled:
		p, err := event.DecodePayload[event.OrderPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		OrdersFulfilled.WithLabelValues(string(p.OrderType), p.MerchantID).Inc()
		CoinsEarned.Add(float64(p.TotalReward))
	}
	return nil
}
