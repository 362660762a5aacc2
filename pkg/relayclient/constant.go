package relayclient

import "time"

// Wire events of the relay websocket protocol.
const (
	EventTextMessage       = "text-message"
	EventResetConversation = "reset-conversation"
	EventConnected         = "connected"
	EventTextResponse      = "text-response"
	EventConversationReset = "conversation-reset"
	EventError             = "error"
)

const (
	DefaultTimeout = 60 * time.Second
	wsPath         = "/ws"
	healthPath     = "/health"
)
