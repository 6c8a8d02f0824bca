// Package config loads environment-based configuration for the server:
// provider credentials, queue tuning, and optional integrations.
package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Platform tags for upstream event platforms. PlatformLocal is the native
// in-house tag; local connections never sync.
const (
	PlatformMeetup     = "meetup"
	PlatformEventbrite = "eventbrite"
	PlatformLuma       = "luma"
	PlatformLocal      = "local"
)

// Env holds all environment-derived configuration. Provider credential
// fields may be empty; adapters report isConfigured=false and are skipped.
type Env struct {
	// GraphQL platform (Meetup)
	MeetupClientKey  string
	MeetupSigningKey string // PEM-encoded RSA private key
	MeetupMemberID   string

	// REST ticketing platform (Eventbrite)
	EventbritePrivateToken string

	// Calendar-invite platform (Luma)
	LumaAPIKey string

	// Symmetric key for stored OAuth tokens (base64-encoded 32 bytes).
	TokenEncryptionKey []byte

	// Optional operator alerting.
	SlackBotToken  string
	SlackChannelID string

	// HMAC key for API bearer tokens (empty disables token auth).
	APIJWTSecret []byte

	// Optional cron expression for periodic sync (empty disables).
	SyncCron string
}

// Queue holds dispatcher tuning.
type Queue struct {
	BatchSize    int
	PollInterval time.Duration
	PollJitter   time.Duration
}

// LoadEnv reads configuration from the process environment.
// Missing provider credentials are not an error; the corresponding adapter
// simply reports not-configured. A malformed TokenEncryptionKey is an error.
func LoadEnv() (*Env, error) {
	env := &Env{
		MeetupClientKey:        os.Getenv("MEETUP_CLIENT_KEY"),
		MeetupSigningKey:       os.Getenv("MEETUP_SIGNING_KEY"),
		MeetupMemberID:         os.Getenv("MEETUP_MEMBER_ID"),
		EventbritePrivateToken: os.Getenv("EVENTBRITE_PRIVATE_TOKEN"),
		LumaAPIKey:             os.Getenv("LUMA_API_KEY"),
		SlackBotToken:          os.Getenv("SLACK_BOT_TOKEN"),
		SlackChannelID:         os.Getenv("SLACK_CHANNEL_ID"),
		SyncCron:               os.Getenv("SYNC_CRON"),
		APIJWTSecret:           []byte(os.Getenv("API_JWT_SECRET")),
	}

	if raw := os.Getenv("TOKEN_ENCRYPTION_KEY"); raw != "" {
		key, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_ENCRYPTION_KEY: %w", err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("TOKEN_ENCRYPTION_KEY must decode to 32 bytes, got %d", len(key))
		}
		env.TokenEncryptionKey = key
	}

	return env, nil
}

// LoadQueue reads dispatcher tuning from the environment with defaults.
func LoadQueue() *Queue {
	return &Queue{
		BatchSize:    getEnvInt("QUEUE_BATCH_SIZE", 25),
		PollInterval: getEnvDuration("QUEUE_POLL_INTERVAL", time.Second),
		PollJitter:   getEnvDuration("QUEUE_POLL_JITTER", 250*time.Millisecond),
	}
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
