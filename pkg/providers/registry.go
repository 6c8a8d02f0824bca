package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/models"
)

// Registry is the process-wide adapter lookup keyed by platform tag.
// Adapters are registered once by the composition root at startup; after
// that the registry is read-only except for lazy per-adapter initialization.
type Registry struct {
	mu          sync.Mutex
	adapters    map[string]Adapter
	order       []string
	initialized map[string]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters:    make(map[string]Adapter),
		initialized: make(map[string]bool),
	}
}

// Register adds an adapter. Startup-only; registering the same platform
// twice panics because it indicates a wiring bug.
func (r *Registry) Register(a Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.adapters[a.Platform()]; exists {
		panic(fmt.Sprintf("provider registry: duplicate adapter for platform %q", a.Platform()))
	}
	r.adapters[a.Platform()] = a
	r.order = append(r.order, a.Platform())
}

// All returns every registered adapter in registration order.
func (r *Registry) All() []Adapter {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Adapter, 0, len(r.order))
	for _, tag := range r.order {
		out = append(out, r.adapters[tag])
	}
	return out
}

// Configured returns the adapters whose credentials are present.
func (r *Registry) Configured(env *config.Env) []Adapter {
	var out []Adapter
	for _, a := range r.All() {
		if a.IsConfigured(env) {
			out = append(out, a)
		}
	}
	return out
}

// Get returns the adapter for a platform tag.
func (r *Registry) Get(platform string) (Adapter, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.adapters[platform]
	return a, ok
}

// FetchEvents resolves the adapter for platform, initializes it on first
// use, and fetches events for platformID.
func (r *Registry) FetchEvents(ctx context.Context, platform, platformID string, env *config.Env, opts models.FetchOptions) (*models.FetchResult, error) {
	a, ok := r.Get(platform)
	if !ok {
		return nil, fmt.Errorf("no adapter registered for platform %q", platform)
	}
	if !a.IsConfigured(env) {
		return nil, fmt.Errorf("%w: %s", ErrNotConfigured, platform)
	}
	if err := r.ensureInitialized(ctx, a, env); err != nil {
		return nil, err
	}
	return a.FetchEvents(ctx, platformID, opts)
}

func (r *Registry) ensureInitialized(ctx context.Context, a Adapter, env *config.Env) error {
	r.mu.Lock()
	done := r.initialized[a.Platform()]
	r.mu.Unlock()
	if done {
		return nil
	}
	if err := a.Initialize(ctx, env); err != nil {
		return fmt.Errorf("failed to initialize %s adapter: %w", a.Platform(), err)
	}
	r.mu.Lock()
	r.initialized[a.Platform()] = true
	r.mu.Unlock()
	return nil
}
