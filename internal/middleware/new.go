package middleware

import (
	"rev-chat-relay/pkg/log"
)

type Middleware struct {
	l              log.Logger
	allowedOrigins []string
	allowAll       bool
}

// New creates the middleware set. An empty list or a "*" entry allows any origin.
func New(l log.Logger, allowedOrigins []string) Middleware {
	allowAll := len(allowedOrigins) == 0
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
	}
	return Middleware{
		l:              l,
		allowedOrigins: allowedOrigins,
		allowAll:       allowAll,
	}
}
