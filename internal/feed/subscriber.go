package feed

import (
	"context"
	"log/slog"

	"github.com/osse101/Apiary_Go/internal/event"
)

// Subscriber bridges the event bus to the hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new Subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers the hub for every apiary event type
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, s.handle)

	types := make([]string, 0, len(event.AllTypes()))
	for _, t := range event.AllTypes() {
		types = append(types, string(t))
	}
	slog.Info(LogMsgSubscribed, "types", types)
}

// handle forwards the payload unchanged. A full hub drops the event.
func (s *Subscriber) handle(_ context.Context, evt event.Event) error {
	if s.hub.Broadcast(string(evt.Type), evt.Payload) {
		slog.Debug(LogMsgEventBroadcast, "type", evt.Type)
	}
	return nil
}
