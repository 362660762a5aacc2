package http

import (
	"github.com/gin-gonic/gin"

	"rev-chat-relay/internal/session"
)

// processSession resolves the :id path param to a live session.
func (h *handler) processSession(c *gin.Context) (*session.Session, error) {
	sess, ok := h.registry.Get(c.Param("id"))
	if !ok {
		return nil, errSessionNotFound
	}
	return sess, nil
}

// processMessageReq binds and validates the send message request body.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidMessage
	}
	return req, req.validate()
}
