package httpserver

import (
	"context"

	chatHTTP "rev-chat-relay/internal/chat/delivery/http"
	chatSocket "rev-chat-relay/internal/chat/delivery/socket"

	"github.com/gin-gonic/gin"
)

// setupChatDomain wires the chat delivery layers over the shared usecase.
// Sessions are never shared: each layer resolves ids in its own registry.
//
//  1. WebSocket handler:  GET /ws
//  2. HTTP handler:       /api/v1/chat/sessions/...
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. WebSocket
	srv.ws = chatSocket.New(srv.l, srv.chatUC, srv.socketSessions, chatSocket.Config{
		CheckOrigin: srv.mw.CheckOrigin,
	})
	srv.gin.GET("/ws", srv.ws.Serve)

	// 2. HTTP
	h := chatHTTP.New(srv.l, srv.chatUC, srv.httpSessions)
	chatHTTP.RegisterRoutes(api.Group("/chat"), h)

	srv.l.Infof(ctx, "Chat domain registered (model %s)", srv.chatUC.Model())
	return nil
}
