package http

// Log prefixes
const (
	LogPrefixCreateSession = "internal.chat.delivery.http.CreateSession"
	LogPrefixSendMessage   = "internal.chat.delivery.http.SendMessage"
)
