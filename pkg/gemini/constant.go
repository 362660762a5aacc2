package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.0-flash-001"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// PlaceholderAPIKey is the value shipped in sample env files.
	PlaceholderAPIKey = "your_api_key_here"
)

// Content roles understood by generateContent.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// maxErrorBody caps how much of a failed response body is kept for diagnostics.
const maxErrorBody = 4 << 10
