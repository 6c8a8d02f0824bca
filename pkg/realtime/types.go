// Package realtime provides live push delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Channel model:
//
//   - "user:{user_id}" carries personal messages (achievement unlocks,
//     badge grants, RSVP transitions). A connection may only subscribe
//     to its own user channel.
//   - "broadcast" carries platform-wide messages (favorite counts).
//   - "group:{slug}" carries group-scoped messages and is open to any
//     connection.
//
// Messages are transient. The durable record of every domain event is
// the queue table; a client that reconnects re-reads state over REST.
package realtime

// BroadcastChannel is the singleton channel for platform-wide messages.
const BroadcastChannel = "broadcast"

// UserChannel returns the personal channel name for a user.
// Format: "user:{user_id}"
func UserChannel(userID string) string {
	return "user:" + userID
}

// GroupChannel returns the channel name for a group's live updates.
// Format: "group:{slug}"
func GroupChannel(slug string) string {
	return "group:" + slug
}

// ClientMessage is the JSON structure for client to server WebSocket messages.
type ClientMessage struct {
	Action  string `json:"action"`            // "subscribe", "unsubscribe", "ping"
	Channel string `json:"channel,omitempty"` // e.g. "group:go-berlin"
}
