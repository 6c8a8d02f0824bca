package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/models"
)

type stubAdapter struct {
	platform   string
	configured bool
	initCalls  int
	fetchCalls int
	result     *models.FetchResult
	fetchErr   error
}

func (s *stubAdapter) Platform() string                   { return s.platform }
func (s *stubAdapter) Name() string                       { return s.platform }
func (s *stubAdapter) IsConfigured(_ *config.Env) bool    { return s.configured }
func (s *stubAdapter) Initialize(_ context.Context, _ *config.Env) error {
	s.initCalls++
	return nil
}

func (s *stubAdapter) FetchEvents(_ context.Context, _ string, _ models.FetchOptions) (*models.FetchResult, error) {
	s.fetchCalls++
	return s.result, s.fetchErr
}

func (s *stubAdapter) FetchGroup(_ context.Context, _ string) (*models.GroupMetadata, error) {
	if s.result == nil {
		return nil, s.fetchErr
	}
	return s.result.Group, s.fetchErr
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	a := &stubAdapter{platform: "meetup", configured: true}
	b := &stubAdapter{platform: "luma", configured: false}
	r.Register(a)
	r.Register(b)

	got, ok := r.Get("meetup")
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = r.Get("unknown")
	assert.False(t, ok)

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "meetup", all[0].Platform())

	configured := r.Configured(&config.Env{})
	require.Len(t, configured, 1)
	assert.Equal(t, "meetup", configured[0].Platform())
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubAdapter{platform: "meetup"})
	assert.Panics(t, func() {
		r.Register(&stubAdapter{platform: "meetup"})
	})
}

func TestRegistryFetchInitializesOnce(t *testing.T) {
	r := NewRegistry()
	a := &stubAdapter{platform: "meetup", configured: true, result: &models.FetchResult{}}
	r.Register(a)

	ctx := context.Background()
	env := &config.Env{}
	_, err := r.FetchEvents(ctx, "meetup", "go-users", env, models.FetchOptions{})
	require.NoError(t, err)
	_, err = r.FetchEvents(ctx, "meetup", "go-users", env, models.FetchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, a.initCalls)
	assert.Equal(t, 2, a.fetchCalls)
}

func TestRegistryFetchUnconfigured(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubAdapter{platform: "meetup", configured: false})

	_, err := r.FetchEvents(context.Background(), "meetup", "go-users", &config.Env{}, models.FetchOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestRegistryFetchUnknownPlatform(t *testing.T) {
	r := NewRegistry()
	_, err := r.FetchEvents(context.Background(), "nope", "id", &config.Env{}, models.FetchOptions{})
	assert.Error(t, err)
}
