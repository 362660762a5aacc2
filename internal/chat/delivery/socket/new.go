package socket

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"rev-chat-relay/internal/chat"
	"rev-chat-relay/internal/session"
	pkgLog "rev-chat-relay/pkg/log"
)

// Handler is the interface for the websocket delivery handler.
type Handler interface {
	// Serve upgrades the request and runs the connection until it closes.
	Serve(c *gin.Context)

	// Shutdown closes every open connection.
	Shutdown()

	// Connections returns the number of open connections.
	Connections() int
}

// Config tunes the upgrader.
type Config struct {
	CheckOrigin func(r *http.Request) bool
}

type handler struct {
	l        pkgLog.Logger
	uc       chat.UseCase
	registry *session.Registry
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[string]*conn
}

// New creates a new websocket delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, registry *session.Registry, cfg Config) Handler {
	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &handler{
		l:        l,
		uc:       uc,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin,
		},
		conns: make(map[string]*conn),
	}
}
