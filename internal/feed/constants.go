package feed

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientMessageBuffer is the buffer size for each client's outbound channel
	ClientMessageBuffer = 32

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// Connection settings
const (
	// PingInterval is how often idle clients are pinged
	PingInterval = 30 * time.Second

	// PongWait bounds how long a client may stay silent after a ping
	PongWait = 60 * time.Second

	// WriteTimeout is the timeout for writing to client connections
	WriteTimeout = 10 * time.Second
)

// Message types that do not come from the bus
const (
	MessageTypeConnected = "connected"
)

// Log messages
const (
	LogMsgClientConnected    = "Feed client connected"
	LogMsgClientDisconnected = "Feed client disconnected"
	LogMsgEventBroadcast     = "Broadcasting feed event"
	LogMsgBroadcastDropped   = "Feed broadcast buffer full, event dropped"
	LogMsgClientLagging      = "Feed client lagging, event skipped"
	LogMsgSubscribed         = "Feed subscribed to event bus"
)
