package gemini

import "context"

// IGemini defines the interface for Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a generation request to Gemini API
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Model returns the model being used
	Model() string

	// Configured reports whether a usable API key is set.
	Configured() bool
}

var _ IGemini = (*Client)(nil)

// KeyConfigured reports whether key is neither empty nor the sample placeholder.
func KeyConfigured(key string) bool {
	return key != "" && key != PlaceholderAPIKey
}
