package socket

import "time"

// Inbound events
const (
	EventTextMessage       = "text-message"
	EventResetConversation = "reset-conversation"
)

// Outbound events
const (
	EventConnected         = "connected"
	EventTextResponse      = "text-response"
	EventConversationReset = "conversation-reset"
	EventError             = "error"
)

// Connection limits
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 << 10
	queueSize      = 16
)

// Log prefixes
const (
	LogPrefixServe    = "internal.chat.delivery.socket.Serve"
	LogPrefixDispatch = "internal.chat.delivery.socket.dispatch"
	LogPrefixWorker   = "internal.chat.delivery.socket.worker"
)
