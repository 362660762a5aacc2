package socket

import "encoding/json"

// Frame is the envelope for every message in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outFrame struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type connectedData struct {
	SessionID string `json:"session_id"`
}

// job is one inbound event waiting for the connection worker.
type job struct {
	event string
	text  string
}
