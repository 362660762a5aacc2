package http

import (
	"github.com/gin-gonic/gin"

	"rev-chat-relay/internal/chat"
	"rev-chat-relay/internal/session"
	"rev-chat-relay/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	CreateSession(c *gin.Context)
	GetSession(c *gin.Context)
	SendMessage(c *gin.Context)
	ResetSession(c *gin.Context)
	DeleteSession(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       chat.UseCase
	registry *session.Registry
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase, registry *session.Registry) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		registry: registry,
	}
}
