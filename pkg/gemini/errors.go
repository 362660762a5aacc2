package gemini

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidResponse is returned when a successful call does not carry
	// the expected response shape.
	ErrInvalidResponse = errors.New("gemini: invalid response format")
)

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Body)
}

func invalidResponse(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidResponse, format, args...)
}
