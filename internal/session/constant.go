package session

import "time"

// Configuration
const (
	DefaultMaxTurns    = 10
	DefaultIdleTTL     = 30 * time.Minute
	DefaultMaxSessions = 10000
)

// Log prefixes
const (
	LogPrefixEvict = "internal.session.Registry.evict"
)
