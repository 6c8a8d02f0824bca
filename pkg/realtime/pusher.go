package realtime

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// notifyLimit is kept under PostgreSQL's 8000-byte NOTIFY payload cap.
const notifyLimit = 7900

// Pusher sends live messages over PostgreSQL NOTIFY. Every pod's
// NotifyListener receives the payload and forwards it to its local
// WebSocket subscribers, so a push reaches clients on any pod.
type Pusher struct {
	db *sql.DB
}

// NewPusher creates a pusher on the shared database pool.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPusher(db *sql.DB) *Pusher {
	return &Pusher{db: db}
}

// PushUser sends a personal message to a user's channel.
func (p *Pusher) PushUser(ctx context.Context, userID string, message map[string]interface{}) error {
	return p.push(ctx, UserChannel(userID), message)
}

// PushBroadcast sends a message to the platform-wide broadcast channel.
func (p *Pusher) PushBroadcast(ctx context.Context, message map[string]interface{}) error {
	return p.push(ctx, BroadcastChannel, message)
}

// PushGroup sends a message to a group's channel.
func (p *Pusher) PushGroup(ctx context.Context, slug string, message map[string]interface{}) error {
	return p.push(ctx, GroupChannel(slug), message)
}

func (p *Pusher) push(ctx context.Context, channel string, message map[string]interface{}) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	notifyPayload, err := truncateIfNeeded(payload)
	if err != nil {
		return err
	}

	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncateIfNeeded returns the payload as-is if it fits within PostgreSQL's
// NOTIFY limit, otherwise a minimal envelope carrying only the routing type.
// Push messages are transient; a client seeing truncated:true re-reads the
// underlying state over REST.
func truncateIfNeeded(payload []byte) (string, error) {
	if len(payload) <= notifyLimit {
		return string(payload), nil
	}

	var routing struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(payload, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing type for truncation: %w", err)
	}

	truncated, err := json.Marshal(map[string]interface{}{
		"type":      routing.Type,
		"truncated": true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncated), nil
}
