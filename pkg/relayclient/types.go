package relayclient

import "encoding/json"

type frame struct {
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

// Health is the body of the relay's /health endpoint.
type Health struct {
	Status        string `json:"status"`
	APIConfigured bool   `json:"apiConfigured"`
	Model         string `json:"model"`
	Timestamp     string `json:"timestamp"`
}
