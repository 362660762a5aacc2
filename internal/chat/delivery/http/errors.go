package http

import (
	"net/http"

	"github.com/pkg/errors"

	"rev-chat-relay/internal/chat"
	"rev-chat-relay/pkg/response"
)

var (
	errSessionNotFound = response.NewHTTPError(http.StatusNotFound, "session not found")
	errGeneration      = response.NewHTTPError(http.StatusBadGateway, chat.MsgGenerationFailed)
	errInvalidMessage  = response.NewHTTPError(http.StatusBadRequest, chat.MsgInvalidMessage)
	errInternal        = response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
)

// mapError translates use-case errors into HTTP errors. Every completion
// failure, including a missing API key, reaches the client as the same
// generic error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return errInvalidMessage
	case chat.IsGenerationFailure(err):
		return errGeneration
	default:
		return errInternal
	}
}
