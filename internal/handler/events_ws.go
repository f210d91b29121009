package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/Apiary_Go/internal/feed"
	"github.com/osse101/Apiary_Go/internal/logger"
)

// EventsHandler streams bus events to websocket clients
type EventsHandler struct {
	hub      *feed.Hub
	upgrader websocket.Upgrader
}

// NewEventsHandler creates a websocket handler over hub
func NewEventsHandler(hub *feed.Hub) *EventsHandler {
	return &EventsHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Connect handles GET /events/ws?types=a,b
func (h *EventsHandler) Connect(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response
		log.Warn(LogMsgUpgradeFailed, "error", err)
		return
	}
	defer conn.Close()

	var types []string
	if raw := r.URL.Query().Get("types"); raw != "" {
		types = strings.Split(raw, ",")
	}

	client := h.hub.Register(types)
	log.Info(feed.LogMsgClientConnected, "client_id", client.ID, "filters", types, "total_clients", h.hub.ClientCount())
	defer func() {
		h.hub.Unregister(client.ID)
		log.Info(feed.LogMsgClientDisconnected, "client_id", client.ID)
	}()

	hello := feed.Message{
		ID:        client.ID,
		Type:      feed.MessageTypeConnected,
		Timestamp: time.Now().Unix(),
		Payload:   map[string]interface{}{"client_id": client.ID, "filters": types},
	}
	if err := writeMessage(conn, hello); err != nil {
		return
	}

	// the read side only watches for close frames and pongs
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		_ = conn.SetReadDeadline(time.Now().Add(feed.PongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(feed.PongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(feed.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case msg, ok := <-client.Messages:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
					time.Now().Add(time.Second))
				return
			}
			if err := writeMessage(conn, msg); err != nil {
				log.Debug(LogMsgWebsocketWriteErr, "client_id", client.ID, "error", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(feed.WriteTimeout)); err != nil {
				return
			}
		}
	}
}

func writeMessage(conn *websocket.Conn, msg feed.Message) error {
	_ = conn.SetWriteDeadline(time.Now().Add(feed.WriteTimeout))
	return conn.WriteJSON(msg)
}
