package realtime

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeededPassthrough(t *testing.T) {
	payload := []byte(`{"type":"badge.issued","badge_slug":"first"}`)
	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, string(payload), out)
}

func TestTruncateIfNeededEnvelope(t *testing.T) {
	big, err := json.Marshal(map[string]interface{}{
		"type": "achievement.unlocked",
		"blob": strings.Repeat("x", 10_000),
	})
	require.NoError(t, err)

	out, err := truncateIfNeeded(big)
	require.NoError(t, err)
	assert.Less(t, len(out), notifyLimit)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &msg))
	assert.Equal(t, "achievement.unlocked", msg["type"])
	assert.Equal(t, true, msg["truncated"])
	assert.NotContains(t, msg, "blob")
}

func TestChannelNames(t *testing.T) {
	assert.Equal(t, "user:u1", UserChannel("u1"))
	assert.Equal(t, "group:go-berlin", GroupChannel("go-berlin"))
	assert.Equal(t, "broadcast", BroadcastChannel)
}
