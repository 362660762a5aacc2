package chat

import (
	"context"

	"rev-chat-relay/internal/session"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Complete relays input to the completion provider with the session's
	// recent turns and records the exchange on success.
	Complete(ctx context.Context, sess *session.Session, input CompleteInput) (CompleteOutput, error)

	// Reset clears the session's dialogue log.
	Reset(ctx context.Context, sess *session.Session)

	// Configured reports whether completions can be attempted at all.
	Configured() bool

	// Model returns the provider model id.
	Model() string
}
