package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Apiary_Go/internal/event"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub()
	h.Start()
	t.Cleanup(h.Stop)
	return h
}

func waitClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case msg := <-c.Messages:
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return Message{}
	}
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	h := startHub(t)
	a := h.Register(nil)
	b := h.Register(nil)
	waitClients(t, h, 2)

	require.True(t, h.Broadcast("order.generated", map[string]string{"id": "order-1"}))

	for _, c := range []*Client{a, b} {
		msg := receive(t, c)
		assert.Equal(t, "order.generated", msg.Type)
		assert.NotEmpty(t, msg.ID)
		assert.Equal(t, map[string]string{"id": "order-1"}, msg.Payload)
	}
}

func TestHub_FilterSkipsUnwantedTypes(t *testing.T) {
	h := startHub(t)
	c := h.Register([]string{"bee.hatched"})
	waitClients(t, h, 1)

	assert.False(t, c.Wants("order.generated"))
	assert.True(t, c.Wants("bee.hatched"))

	h.Broadcast("order.generated", nil)
	h.Broadcast("bee.hatched", 3)

	msg := receive(t, c)
	assert.Equal(t, "bee.hatched", msg.Type)
	assert.Equal(t, 3, msg.Payload)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	h := startHub(t)
	c := h.Register(nil)
	waitClients(t, h, 1)

	h.Unregister(c.ID)
	waitClients(t, h, 0)

	_, open := <-c.Messages
	assert.False(t, open)
}

func TestHub_StopIsIdempotent(t *testing.T) {
	h := NewHub()
	h.Start()
	c := h.Register(nil)
	waitClients(t, h, 1)

	h.Stop()
	h.Stop()

	_, open := <-c.Messages
	assert.False(t, open)
	assert.Zero(t, h.ClientCount())
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	h := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(h, bus).Subscribe()

	c := h.Register(nil)
	waitClients(t, h, 1)

	for _, typ := range event.AllTypes() {
		require.NoError(t, bus.Publish(context.Background(), event.Event{Type: typ, Payload: string(typ)}))
		msg := receive(t, c)
		assert.Equal(t, string(typ), msg.Type)
		assert.Equal(t, string(typ), msg.Payload)
	}
}
