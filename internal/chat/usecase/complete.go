package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"rev-chat-relay/internal/chat"
	"rev-chat-relay/internal/model"
	"rev-chat-relay/internal/session"
	"rev-chat-relay/pkg/gemini"
)

// Complete sends the message with the session's history and, only when a
// reply comes back, records the user turn followed by the assistant turn.
func (uc *implUseCase) Complete(ctx context.Context, sess *session.Session, input chat.CompleteInput) (chat.CompleteOutput, error) {
	if !uc.llm.Configured() {
		uc.l.Errorf(ctx, "%s: api key not set", LogPrefixComplete)
		return chat.CompleteOutput{}, chat.ErrNotConfigured
	}
	if strings.TrimSpace(input.Message) == "" {
		return chat.CompleteOutput{}, chat.ErrEmptyMessage
	}

	if err := sess.Acquire(ctx); err != nil {
		return chat.CompleteOutput{}, &chat.TransportError{Err: errors.Wrap(err, "waiting for previous exchange")}
	}
	defer sess.Release()

	req := uc.buildRequest(sess.Snapshot(), input.Message)

	callCtx := ctx
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	uc.l.Debugf(ctx, "%s: sending %d contents to %s", LogPrefixComplete, len(req.Contents), uc.llm.Model())
	started := time.Now()

	resp, err := uc.llm.GenerateContent(callCtx, req)
	if err != nil {
		err = mapProviderError(err)
		uc.logFailure(ctx, err)
		return chat.CompleteOutput{}, err
	}

	reply, err := resp.Text()
	if err != nil {
		err = errors.Wrap(chat.ErrMalformedResponse, err.Error())
		uc.logFailure(ctx, err)
		return chat.CompleteOutput{}, err
	}

	sess.AppendTurn(model.RoleUser, input.Message)
	sess.AppendTurn(model.RoleAssistant, reply)

	elapsed := time.Since(started)
	var tokens int
	if resp.UsageMetadata != nil {
		tokens = resp.UsageMetadata.TotalTokenCount
	}
	uc.l.Infof(ctx, "%s: reply in %s (history=%d, tokens=%d)", LogPrefixComplete, elapsed.Round(time.Millisecond), sess.Len(), tokens)

	return chat.CompleteOutput{
		Reply:       reply,
		Model:       uc.llm.Model(),
		Duration:    elapsed,
		TotalTokens: tokens,
	}, nil
}

// mapProviderError sorts a client failure into the chat error kinds.
func mapProviderError(err error) error {
	var apiErr *gemini.APIError
	switch {
	case errors.As(err, &apiErr):
		return &chat.TransportError{StatusCode: apiErr.StatusCode, Body: apiErr.Body, Err: err}
	case errors.Is(err, gemini.ErrInvalidResponse):
		return errors.Wrap(chat.ErrMalformedResponse, err.Error())
	default:
		return &chat.TransportError{Err: err}
	}
}

func (uc *implUseCase) logFailure(ctx context.Context, err error) {
	var te *chat.TransportError
	if errors.As(err, &te) && te.StatusCode != 0 {
		uc.l.Errorf(ctx, "%s: provider returned %d: %s", LogPrefixComplete, te.StatusCode, te.Body)
		return
	}
	uc.l.Errorf(ctx, "%s: %v", LogPrefixComplete, err)
}
