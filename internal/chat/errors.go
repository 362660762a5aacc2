package chat

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotConfigured means no usable API key is set. No call is attempted.
	ErrNotConfigured = errors.New("completion api key not configured")

	// ErrMalformedResponse means the provider answered 2xx without reply text.
	ErrMalformedResponse = errors.New("malformed completion response")

	// ErrEmptyMessage rejects blank user input.
	ErrEmptyMessage = errors.New("message is empty")
)

// TransportError covers non-2xx answers, network failures and timeouts.
// StatusCode is 0 when no HTTP response was received.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("completion transport error: %v", e.Err)
	}
	return fmt.Sprintf("completion request failed with status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsGenerationFailure reports whether err is one of the completion error kinds
// that reach the remote client as a single generic failure.
func IsGenerationFailure(err error) bool {
	var te *TransportError
	return errors.Is(err, ErrNotConfigured) ||
		errors.Is(err, ErrMalformedResponse) ||
		errors.As(err, &te)
}
