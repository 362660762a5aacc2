package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"rev-chat-relay/pkg/log"
)

// RegistryConfig sizes the registry.
type RegistryConfig struct {
	MaxSessions int
	IdleTTL     time.Duration
	MaxTurns    int
}

// Registry indexes live sessions by connection id. Sessions idle for longer
// than IdleTTL, or pushed out by MaxSessions, are dropped from the index; a
// connection that still holds the pointer keeps working with it.
type Registry struct {
	l        log.Logger
	sessions *expirable.LRU[string, *Session]
	maxTurns int
}

// NewRegistry creates a Registry. Zero values in cfg fall back to defaults.
func NewRegistry(l log.Logger, cfg RegistryConfig) *Registry {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultIdleTTL
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}

	r := &Registry{l: l, maxTurns: cfg.MaxTurns}
	r.sessions = expirable.NewLRU[string, *Session](cfg.MaxSessions, r.evict, cfg.IdleTTL)
	return r
}

// Create registers a fresh, empty session under id, replacing any previous one.
func (r *Registry) Create(id string) *Session {
	s := New(id, r.maxTurns)
	r.sessions.Add(id, s)
	return s
}

// Get returns the session for id and refreshes its idle timer.
func (r *Registry) Get(id string) (*Session, bool) {
	s, ok := r.sessions.Get(id)
	if !ok {
		return nil, false
	}
	r.sessions.Add(id, s)
	return s, true
}

// Remove destroys the session for id. It reports whether one existed.
func (r *Registry) Remove(id string) bool {
	return r.sessions.Remove(id)
}

// Len returns the number of indexed sessions.
func (r *Registry) Len() int {
	return r.sessions.Len()
}

// MaxTurns is the window size given to new sessions.
func (r *Registry) MaxTurns() int {
	return r.maxTurns
}

func (r *Registry) evict(id string, s *Session) {
	if r.l == nil {
		return
	}
	r.l.Debugf(log.WithFields(context.Background(), "session_id", id),
		"%s: dropped session (turns=%d, last_active=%s)", LogPrefixEvict, s.Len(), s.LastActive().Format(time.RFC3339))
}
