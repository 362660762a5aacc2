package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rev-chat-relay/internal/model"
	"rev-chat-relay/pkg/log"
)

func TestRegistry_Lifecycle(t *testing.T) {
	r := NewRegistry(log.NewNop(), RegistryConfig{MaxTurns: 4})

	s := r.Create("conn-1")
	assert.Equal(t, "conn-1", s.ID())
	assert.Equal(t, 4, s.MaxTurns())
	assert.Equal(t, 1, r.Len())

	got, ok := r.Get("conn-1")
	require.True(t, ok)
	assert.Same(t, s, got)

	assert.True(t, r.Remove("conn-1"))
	assert.False(t, r.Remove("conn-1"))
	_, ok = r.Get("conn-1")
	assert.False(t, ok)
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	r := NewRegistry(log.NewNop(), RegistryConfig{})

	a := r.Create("a")
	b := r.Create("b")
	a.AppendTurn(model.RoleUser, "only for a")

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, DefaultMaxTurns, b.MaxTurns())
}

func TestRegistry_CreateReplaces(t *testing.T) {
	r := NewRegistry(log.NewNop(), RegistryConfig{})

	first := r.Create("x")
	first.AppendTurn(model.RoleUser, "hi")
	second := r.Create("x")

	assert.NotSame(t, first, second)
	assert.Equal(t, 0, second.Len())
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_CapacityEvictsLeastRecentlyUsed(t *testing.T) {
	r := NewRegistry(nil, RegistryConfig{MaxSessions: 2, IdleTTL: time.Hour})

	r.Create("a")
	r.Create("b")
	_, _ = r.Get("a")
	r.Create("c")

	_, okA := r.Get("a")
	_, okB := r.Get("b")
	_, okC := r.Get("c")
	assert.True(t, okA)
	assert.False(t, okB)
	assert.True(t, okC)
}
