package slack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSyncFailureMessage(t *testing.T) {
	blocks := BuildSyncFailureMessage("go-berlin", "provider timeout")

	require.Len(t, blocks, 1)
	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, ":x:")
	assert.Contains(t, section.Text.Text, "go-berlin")
	assert.Contains(t, section.Text.Text, "provider timeout")
}

func TestBuildSyncFailureMessageWithoutError(t *testing.T) {
	blocks := BuildSyncFailureMessage("go-berlin", "")

	require.Len(t, blocks, 1)
	section := blocks[0].(*goslack.SectionBlock)
	assert.NotContains(t, section.Text.Text, "*Error:*")
}

func TestTruncateForSlack(t *testing.T) {
	short := "fits"
	assert.Equal(t, short, truncateForSlack(short))

	long := strings.Repeat("x", maxBlockTextLength+1)
	out := truncateForSlack(long)
	assert.Contains(t, out, "truncated")
	assert.Less(t, len(out), len(long)+100)
}

func TestNotifierPostsToChannel(t *testing.T) {
	var gotChannel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotChannel = r.FormValue("channel")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1700000000.000100"}`))
	}))
	defer server.Close()

	client := NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/")
	notifier := NewNotifier(client)

	notifier.SyncFailed(context.Background(), "go-berlin", "provider timeout")
	assert.Equal(t, "C123", gotChannel)
}
