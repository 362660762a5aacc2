package socket

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"rev-chat-relay/internal/chat"
	pkgLog "rev-chat-relay/pkg/log"
)

// Serve upgrades the request to a websocket and owns the connection until it
// closes. The session lives exactly as long as the connection.
func (h *handler) Serve(c *gin.Context) {
	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(c.Request.Context(), "%s: upgrade failed: %v", LogPrefixServe, err)
		return
	}

	id := uuid.NewString()
	ctx, cancel := context.WithCancel(pkgLog.WithFields(context.Background(), "session_id", id))
	cn := newConn(id, ws, h.registry.Create(id), cancel)
	h.track(cn)

	h.l.Infof(ctx, "%s: client connected from %s", LogPrefixServe, c.ClientIP())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		h.worker(ctx, cn)
	}()
	go func() {
		defer wg.Done()
		cn.ping(ctx)
	}()

	defer func() {
		cancel()
		_ = ws.Close()
		wg.Wait()
		h.untrack(cn)
		h.registry.Remove(id)
		h.l.Infof(ctx, "%s: client disconnected", LogPrefixServe)
	}()

	if err := cn.send(EventConnected, connectedData{SessionID: id}); err != nil {
		h.l.Warnf(ctx, "%s: failed to greet client: %v", LogPrefixServe, err)
		return
	}

	h.readLoop(ctx, cn)
}

func (h *handler) readLoop(ctx context.Context, cn *conn) {
	cn.ws.SetReadLimit(maxMessageSize)
	_ = cn.ws.SetReadDeadline(time.Now().Add(pongWait))
	cn.ws.SetPongHandler(func(string) error {
		return cn.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := cn.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.l.Warnf(ctx, "%s: read error: %v", LogPrefixServe, err)
			}
			return
		}
		_ = cn.ws.SetReadDeadline(time.Now().Add(pongWait))
		h.dispatch(ctx, cn, raw)
	}
}

// dispatch validates one inbound frame and queues it for the worker so the
// read loop never waits on the provider.
func (h *handler) dispatch(ctx context.Context, cn *conn, raw []byte) {
	var f Frame
	if err := json.Unmarshal(raw, &f); err != nil {
		h.l.Warnf(ctx, "%s: bad frame: %v", LogPrefixDispatch, err)
		h.reply(ctx, cn, EventError, chat.MsgInvalidMessage)
		return
	}

	var j job
	switch f.Event {
	case EventTextMessage:
		var text string
		if err := json.Unmarshal(f.Data, &text); err != nil || strings.TrimSpace(text) == "" {
			h.reply(ctx, cn, EventError, chat.MsgInvalidMessage)
			return
		}
		h.l.Debugf(ctx, "%s: received text message (%d bytes)", LogPrefixDispatch, len(text))
		j = job{event: f.Event, text: text}
	case EventResetConversation:
		j = job{event: f.Event}
	default:
		h.l.Warnf(ctx, "%s: unknown event %q", LogPrefixDispatch, f.Event)
		h.reply(ctx, cn, EventError, chat.MsgUnknownEvent)
		return
	}

	if !cn.enqueue(j) {
		h.reply(ctx, cn, EventError, chat.MsgBusy)
	}
}

// worker handles queued events one at a time, in arrival order.
func (h *handler) worker(ctx context.Context, cn *conn) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-cn.queue:
			switch j.event {
			case EventTextMessage:
				out, err := h.uc.Complete(ctx, cn.session, chat.CompleteInput{Message: j.text})
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					h.l.Errorf(ctx, "%s: completion failed: %v", LogPrefixWorker, err)
					h.reply(ctx, cn, EventError, chat.MsgGenerationFailed)
					continue
				}
				h.reply(ctx, cn, EventTextResponse, out.Reply)
			case EventResetConversation:
				h.uc.Reset(ctx, cn.session)
				h.reply(ctx, cn, EventConversationReset, nil)
			}
		}
	}
}

func (h *handler) reply(ctx context.Context, cn *conn, event string, data any) {
	if err := cn.send(event, data); err != nil {
		h.l.Warnf(ctx, "%s: failed to send %s: %v", LogPrefixServe, event, err)
	}
}

func (h *handler) track(cn *conn) {
	h.mu.Lock()
	h.conns[cn.id] = cn
	h.mu.Unlock()
}

func (h *handler) untrack(cn *conn) {
	h.mu.Lock()
	delete(h.conns, cn.id)
	h.mu.Unlock()
}

// Shutdown closes every open connection with a going-away frame.
func (h *handler) Shutdown() {
	h.mu.Lock()
	conns := make([]*conn, 0, len(h.conns))
	for _, cn := range h.conns {
		conns = append(conns, cn)
	}
	h.mu.Unlock()

	for _, cn := range conns {
		cn.cancel()
		cn.close(websocket.CloseGoingAway, "server shutting down")
	}
}

// Connections returns the number of open connections.
func (h *handler) Connections() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}
