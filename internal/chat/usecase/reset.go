package usecase

import (
	"context"

	"rev-chat-relay/internal/session"
)

// Reset clears the session's dialogue log. It never touches the network.
func (uc *implUseCase) Reset(ctx context.Context, sess *session.Session) {
	sess.Reset()
	uc.l.Infof(ctx, "%s: conversation history reset", LogPrefixReset)
}
