// Package providers contains the upstream platform adapters and their
// registry. Adapters extract events from heterogeneous provider APIs and
// normalize them into the canonical shapes in pkg/models. Adapters never
// write to the store.
package providers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/models"
)

// Adapter is the per-platform extractor contract. Implementations are
// stateful only with respect to a cached access credential; Initialize must
// be idempotent.
type Adapter interface {
	// Platform returns the platform tag (config.Platform*).
	Platform() string

	// Name returns the human-readable platform name.
	Name() string

	// IsConfigured reports whether the environment carries the credentials
	// this adapter needs. Unconfigured adapters are skipped by batch sync.
	IsConfigured(env *config.Env) bool

	// Initialize performs any auth handshake. Safe to call repeatedly.
	Initialize(ctx context.Context, env *config.Env) error

	// FetchEvents returns the upstream group profile and its upcoming
	// events for the given platform-side identifier.
	FetchEvents(ctx context.Context, platformID string, opts models.FetchOptions) (*models.FetchResult, error)

	// FetchGroup returns only the group profile.
	FetchGroup(ctx context.Context, platformID string) (*models.GroupMetadata, error)
}

// ErrNotConfigured is returned when an adapter is used without its
// credentials present. Batch sync treats it as skip, not failure.
var ErrNotConfigured = errors.New("adapter not configured")

// ErrAuthentication is returned when the upstream rejects the adapter's
// credentials. The adapter requires re-initialization.
var ErrAuthentication = errors.New("authentication rejected by upstream")

// RateLimitError is returned when the upstream throttles us. The sync
// service surfaces it in the sync result and never retries inside the core.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited by upstream, retry after %s", e.RetryAfter)
}

// IsRateLimited reports whether err is (or wraps) a RateLimitError.
func IsRateLimited(err error) (*RateLimitError, bool) {
	var rle *RateLimitError
	if errors.As(err, &rle) {
		return rle, true
	}
	return nil, false
}
