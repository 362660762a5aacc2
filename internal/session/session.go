package session

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"rev-chat-relay/internal/model"
)

// Session holds the bounded dialogue log of one connection.
// All methods are safe for concurrent use.
type Session struct {
	id        string
	maxTurns  int
	createdAt time.Time

	mu         sync.RWMutex
	turns      []model.Turn
	lastActive time.Time

	// exchange admits one completion at a time so turns land in send order.
	exchange *semaphore.Weighted
}

// New creates an empty session. maxTurns <= 0 means DefaultMaxTurns.
func New(id string, maxTurns int) *Session {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	now := time.Now()
	return &Session{
		id:         id,
		maxTurns:   maxTurns,
		createdAt:  now,
		lastActive: now,
		turns:      make([]model.Turn, 0, maxTurns),
		exchange:   semaphore.NewWeighted(1),
	}
}

func (s *Session) ID() string           { return s.id }
func (s *Session) MaxTurns() int        { return s.maxTurns }
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// LastActive is the time of the last mutation.
func (s *Session) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActive
}

// AppendTurn appends a turn and drops the oldest turns until the log fits
// within MaxTurns.
func (s *Session) AppendTurn(role model.Role, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, model.Turn{Role: role, Text: text})
	if over := len(s.turns) - s.maxTurns; over > 0 {
		kept := make([]model.Turn, s.maxTurns, s.maxTurns+1)
		copy(kept, s.turns[over:])
		s.turns = kept
	}
	s.lastActive = time.Now()
}

// Reset empties the log.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = make([]model.Turn, 0, s.maxTurns)
	s.lastActive = time.Now()
}

// Snapshot returns a copy of the log, oldest first.
func (s *Session) Snapshot() []model.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns currently held.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

// Acquire blocks until the caller owns the session's exchange slot or ctx is
// done. Every successful Acquire must be paired with Release.
func (s *Session) Acquire(ctx context.Context) error {
	return s.exchange.Acquire(ctx, 1)
}

// Release frees the exchange slot taken by Acquire.
func (s *Session) Release() {
	s.exchange.Release(1)
}
