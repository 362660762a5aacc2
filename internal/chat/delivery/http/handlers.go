package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rev-chat-relay/pkg/log"
	"rev-chat-relay/pkg/response"
)

// CreateSession godoc
// @Summary     Create a chat session
// @Description Opens an empty conversation and returns its id.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	sess := h.registry.Create(uuid.NewString())
	h.l.Infof(log.WithFields(c.Request.Context(), "session_id", sess.ID()), "%s: session created", LogPrefixCreateSession)
	response.OK(c, h.newSessionResp(sess))
}

// GetSession godoc
// @Summary     Get a chat session
// @Description Returns the current dialogue window of a session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/chat/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	sess, err := h.processSession(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newHistoryResp(sess))
}

// SendMessage godoc
// @Summary     Send a message
// @Description Relays a message to the assistant with the session's recent context and returns the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Session ID"
// @Param       body body messageReq true "Message"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Invalid message"
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     502 {object} response.Resp "Failed to generate response"
// @Router      /api/v1/chat/sessions/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	sess, err := h.processSession(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	ctx := log.WithFields(c.Request.Context(), "session_id", sess.ID())

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Complete(ctx, sess, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.Complete: %v", LogPrefixSendMessage, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMessageResp(sess, output))
}

// ResetSession godoc
// @Summary     Reset a chat session
// @Description Clears the dialogue history of a session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/chat/sessions/{id}/reset [POST]
func (h *handler) ResetSession(c *gin.Context) {
	sess, err := h.processSession(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.uc.Reset(log.WithFields(c.Request.Context(), "session_id", sess.ID()), sess)
	response.OK(c, h.newSessionResp(sess))
}

// DeleteSession godoc
// @Summary     Delete a chat session
// @Description Destroys a session and its history.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if !h.registry.Remove(id) {
		response.Error(c, errSessionNotFound, nil)
		return
	}

	response.OK(c, gin.H{"session_id": id})
}
