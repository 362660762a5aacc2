package relayclient

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnexpectedEvent = errors.New("unexpected event")
	ErrClosed          = errors.New("client closed")
)

// ServerError is an error event sent by the relay.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("relay error: %s", e.Message)
}
