package http

import (
	"strings"
	"time"

	"rev-chat-relay/internal/chat"
	"rev-chat-relay/internal/model"
	"rev-chat-relay/internal/session"
)

// --- Request DTOs ---

type messageReq struct {
	Text string `json:"text" binding:"required"`
}

func (r messageReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errInvalidMessage
	}
	return nil
}

func (r messageReq) toInput() chat.CompleteInput {
	return chat.CompleteInput{Message: r.Text}
}

// --- Response DTOs ---

type sessionResp struct {
	SessionID string `json:"session_id"`
	MaxTurns  int    `json:"max_turns"`
}

type turnResp struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type historyResp struct {
	SessionID  string     `json:"session_id"`
	MaxTurns   int        `json:"max_turns"`
	CreatedAt  string     `json:"created_at"`
	LastActive string     `json:"last_active"`
	Turns      []turnResp `json:"turns"`
}

type messageResp struct {
	SessionID   string `json:"session_id"`
	Reply       string `json:"reply"`
	Model       string `json:"model"`
	DurationMS  int64  `json:"duration_ms"`
	TotalTokens int    `json:"total_tokens"`
}

func (h *handler) newSessionResp(s *session.Session) sessionResp {
	return sessionResp{SessionID: s.ID(), MaxTurns: s.MaxTurns()}
}

func (h *handler) newHistoryResp(s *session.Session) historyResp {
	snap := s.Snapshot()
	turns := make([]turnResp, len(snap))
	for i, t := range snap {
		turns[i] = newTurnResp(t)
	}
	return historyResp{
		SessionID:  s.ID(),
		MaxTurns:   s.MaxTurns(),
		CreatedAt:  s.CreatedAt().UTC().Format(time.RFC3339),
		LastActive: s.LastActive().UTC().Format(time.RFC3339),
		Turns:      turns,
	}
}

func newTurnResp(t model.Turn) turnResp {
	return turnResp{Role: string(t.Role), Text: t.Text}
}

func (h *handler) newMessageResp(s *session.Session, out chat.CompleteOutput) messageResp {
	return messageResp{
		SessionID:   s.ID(),
		Reply:       out.Reply,
		Model:       out.Model,
		DurationMS:  out.Duration.Milliseconds(),
		TotalTokens: out.TotalTokens,
	}
}
