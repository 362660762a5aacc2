package relayclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

// Client is one relay connection, and therefore one conversation.
// Requests on a Client are serialized.
type Client struct {
	ws        *websocket.Conn
	sessionID string
	timeout   time.Duration

	mu     sync.Mutex
	closed bool
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each request that has no context deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WebSocketURL turns a relay base URL (http or ws scheme) into its websocket endpoint.
func WebSocketURL(base string) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return "", errors.Wrap(err, "parse url")
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", errors.Errorf("unsupported scheme %q", u.Scheme)
	}
	if !strings.HasSuffix(u.Path, wsPath) {
		u.Path += wsPath
	}
	return u.String(), nil
}

// Dial connects to the relay at base and waits for the connected event.
func Dial(ctx context.Context, base string, opts ...Option) (*Client, error) {
	wsURL, err := WebSocketURL(base)
	if err != nil {
		return nil, err
	}

	ws, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", wsURL)
	}

	c := &Client{ws: ws, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(c)
	}

	f, err := c.read(ctx)
	if err != nil {
		_ = ws.Close()
		return nil, err
	}
	if f.Event != EventConnected {
		_ = ws.Close()
		return nil, errors.Wrapf(ErrUnexpectedEvent, "got %q, want %q", f.Event, EventConnected)
	}
	var data connectedData
	if err := json.Unmarshal(f.Data, &data); err != nil {
		_ = ws.Close()
		return nil, errors.Wrap(err, "decode connected")
	}
	c.sessionID = data.SessionID
	return c, nil
}

// SessionID returns the id the relay assigned to this connection.
func (c *Client) SessionID() string {
	return c.sessionID
}

// Send relays one message and returns the assistant's reply.
func (c *Client) Send(ctx context.Context, text string) (string, error) {
	f, err := c.roundTrip(ctx, outFrame{Event: EventTextMessage, Data: text}, EventTextResponse)
	if err != nil {
		return "", err
	}
	var reply string
	if err := json.Unmarshal(f.Data, &reply); err != nil {
		return "", errors.Wrap(err, "decode reply")
	}
	return reply, nil
}

// Reset clears the conversation on the relay.
func (c *Client) Reset(ctx context.Context) error {
	_, err := c.roundTrip(ctx, outFrame{Event: EventResetConversation}, EventConversationReset)
	return err
}

// Close ends the connection, which also destroys the session on the relay.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return c.ws.Close()
}

func (c *Client) roundTrip(ctx context.Context, out outFrame, want string) (frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return frame{}, ErrClosed
	}

	_ = c.ws.SetWriteDeadline(c.deadline(ctx))
	if err := c.ws.WriteJSON(out); err != nil {
		c.abort()
		return frame{}, errors.Wrap(err, "write")
	}

	// The relay answers in order without request ids, so once a reply is
	// missed the stream cannot be trusted and the connection is dropped.
	f, err := c.read(ctx)
	if err != nil {
		c.abort()
		return frame{}, err
	}
	switch f.Event {
	case want:
		return f, nil
	case EventError:
		var msg string
		_ = json.Unmarshal(f.Data, &msg)
		return frame{}, &ServerError{Message: msg}
	default:
		c.abort()
		return frame{}, errors.Wrapf(ErrUnexpectedEvent, "got %q, want %q", f.Event, want)
	}
}

// abort drops the connection. Callers hold c.mu.
func (c *Client) abort() {
	c.closed = true
	_ = c.ws.Close()
}

func (c *Client) read(ctx context.Context) (frame, error) {
	_ = c.ws.SetReadDeadline(c.deadline(ctx))
	var f frame
	if err := c.ws.ReadJSON(&f); err != nil {
		if ctx.Err() != nil {
			return frame{}, ctx.Err()
		}
		return frame{}, errors.Wrap(err, "read")
	}
	return f, nil
}

func (c *Client) deadline(ctx context.Context) time.Time {
	if d, ok := ctx.Deadline(); ok {
		return d
	}
	return time.Now().Add(c.timeout)
}

// GetHealth queries the relay's health endpoint.
func GetHealth(ctx context.Context, base string) (Health, error) {
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return Health{}, errors.Wrap(err, "parse url")
	}
	switch u.Scheme {
	case "ws":
		u.Scheme = "http"
	case "wss":
		u.Scheme = "https"
	}
	u.Path = strings.TrimSuffix(u.Path, wsPath) + healthPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Health{}, errors.Wrap(err, "build request")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Health{}, errors.Wrap(err, "get health")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Health{}, errors.Errorf("health returned status %d", resp.StatusCode)
	}
	var h Health
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return Health{}, errors.Wrap(err, "decode health")
	}
	return h, nil
}
