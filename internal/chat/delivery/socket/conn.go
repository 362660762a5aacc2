package socket

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"rev-chat-relay/internal/session"
)

// conn is one client connection and the session it owns.
type conn struct {
	id      string
	ws      *websocket.Conn
	session *session.Session
	queue   chan job
	cancel  context.CancelFunc

	writeMu sync.Mutex
}

func newConn(id string, ws *websocket.Conn, sess *session.Session, cancel context.CancelFunc) *conn {
	return &conn{
		id:      id,
		ws:      ws,
		session: sess,
		queue:   make(chan job, queueSize),
		cancel:  cancel,
	}
}

// send writes one frame. Safe for concurrent use.
func (c *conn) send(event string, data any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteJSON(outFrame{Event: event, Data: data})
}

// enqueue hands a job to the worker without blocking the read loop.
func (c *conn) enqueue(j job) bool {
	select {
	case c.queue <- j:
		return true
	default:
		return false
	}
}

// ping keeps the peer's read deadline moving until ctx is done.
func (c *conn) ping(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// close sends a close frame with code and drops the socket.
func (c *conn) close(code int, reason string) {
	_ = c.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
	_ = c.ws.Close()
}
