package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(5 * time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		// The test handler reads the user from a query param; in
		// production the API layer resolves it from the session.
		manager.HandleConnection(r.Context(), conn, r.URL.Query().Get("user"))
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server, userID string) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	if userID != "" {
		url += "?user=" + userID
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeJSON(t *testing.T, conn *websocket.Conn, v interface{}) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

// waitForSubscribers polls until the channel has the expected subscriber count.
func waitForSubscribers(t *testing.T, m *ConnectionManager, channel string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if m.subscriberCount(channel) == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, want, m.subscriberCount(channel))
}

func TestConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server, "")

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestAutoSubscribedChannels(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server, "u1")
	readJSON(t, conn)

	// Authenticated connections land on their personal channel and the
	// broadcast channel without any client action.
	waitForSubscribers(t, manager, UserChannel("u1"), 1)
	waitForSubscribers(t, manager, BroadcastChannel, 1)

	payload, _ := json.Marshal(map[string]string{"type": "achievement.unlocked"})
	manager.Broadcast(UserChannel("u1"), payload)
	msg := readJSON(t, conn)
	assert.Equal(t, "achievement.unlocked", msg["type"])
}

func TestAnonymousGetsBroadcastOnly(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server, "")
	readJSON(t, conn)

	waitForSubscribers(t, manager, BroadcastChannel, 1)

	payload, _ := json.Marshal(map[string]interface{}{
		"type":           "favorite.count_changed",
		"group_slug":     "go-berlin",
		"favorite_count": 3,
	})
	manager.Broadcast(BroadcastChannel, payload)
	msg := readJSON(t, conn)
	assert.Equal(t, "favorite.count_changed", msg["type"])
	assert.Equal(t, "go-berlin", msg["group_slug"])
}

func TestSubscribeGroupChannel(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server, "")
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "group:go-berlin"})
	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "group:go-berlin", msg["channel"])

	waitForSubscribers(t, manager, "group:go-berlin", 1)
	payload, _ := json.Marshal(map[string]string{"type": "event.updated"})
	manager.Broadcast("group:go-berlin", payload)
	assert.Equal(t, "event.updated", readJSON(t, conn)["type"])
}

func TestSubscribeForeignUserChannelDenied(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server, "u1")
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: UserChannel("u2")})
	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.error", msg["type"])
	assert.Equal(t, "user:u2", msg["channel"])
	assert.Equal(t, 0, manager.subscriberCount(UserChannel("u2")))
}

func TestBroadcastIsolation(t *testing.T) {
	manager, server := setupTestManager(t)

	alice := connectWS(t, server, "alice")
	bob := connectWS(t, server, "bob")
	readJSON(t, alice)
	readJSON(t, bob)
	waitForSubscribers(t, manager, UserChannel("alice"), 1)
	waitForSubscribers(t, manager, UserChannel("bob"), 1)

	payload, _ := json.Marshal(map[string]string{"type": "badge.issued", "badge_slug": "first"})
	manager.Broadcast(UserChannel("alice"), payload)

	assert.Equal(t, "badge.issued", readJSON(t, alice)["type"])

	// Bob must not see Alice's personal message. Send him a broadcast
	// next; it must be the first thing he reads.
	bcast, _ := json.Marshal(map[string]string{"type": "favorite.count_changed"})
	manager.Broadcast(BroadcastChannel, bcast)
	assert.Equal(t, "favorite.count_changed", readJSON(t, bob)["type"])
}

func TestPingPong(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server, "")
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "ping"})
	assert.Equal(t, "pong", readJSON(t, conn)["type"])
}

func TestEmptyChannelValidation(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server, "")
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe"})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server, "")
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "group:go-berlin"})
	readJSON(t, conn)
	waitForSubscribers(t, manager, "group:go-berlin", 1)

	writeJSON(t, conn, ClientMessage{Action: "unsubscribe", Channel: "group:go-berlin"})
	waitForSubscribers(t, manager, "group:go-berlin", 0)

	payload, _ := json.Marshal(map[string]string{"type": "event.updated"})
	manager.Broadcast("group:go-berlin", payload)

	// Only a subsequent ping response arrives.
	writeJSON(t, conn, ClientMessage{Action: "ping"})
	assert.Equal(t, "pong", readJSON(t, conn)["type"])
}

func TestCleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server, "u1")
	readJSON(t, conn)
	waitForSubscribers(t, manager, UserChannel("u1"), 1)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && manager.ActiveConnections() > 0 {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 0, manager.ActiveConnections())
	assert.Equal(t, 0, manager.subscriberCount(UserChannel("u1")))
}

func TestBroadcastToNonExistentChannel(t *testing.T) {
	manager := NewConnectionManager(time.Second)
	// Must not panic.
	manager.Broadcast("group:nobody", []byte(`{"type":"x"}`))
}
