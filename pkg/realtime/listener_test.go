package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotifyListener(t *testing.T) {
	manager := NewConnectionManager(0)
	l := NewNotifyListener("postgres://localhost/test", manager)

	assert.NotNil(t, l)
	assert.Empty(t, l.active)
	assert.False(t, l.started.Load())
}

func TestSubscribeWithoutConnection(t *testing.T) {
	l := NewNotifyListener("postgres://localhost/test", NewConnectionManager(0))

	// Without Start, Subscribe must fail fast instead of queueing.
	err := l.Subscribe(t.Context(), "user:u1")
	assert.Error(t, err)
	assert.Empty(t, l.active)

	// Unsubscribe for a channel we never listened to is a no-op.
	assert.NoError(t, l.Unsubscribe(t.Context(), "user:u1"))
}
