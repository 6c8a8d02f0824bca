package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub/pkg/bus"
	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/providers"
	"github.com/gatherhub/gatherhub/pkg/sync"
	testdb "github.com/gatherhub/gatherhub/test/database"
)

func newSyncService(t *testing.T) *sync.Service {
	t.Helper()
	client := testdb.NewTestClient(t)
	return sync.NewService(client.Client, providers.NewRegistry(), bus.NewPublisher(client.Client), &config.Env{})
}

func TestNewRejectsBadSpec(t *testing.T) {
	_, err := New("not a cron spec", newSyncService(t))
	assert.Error(t, err)
}

func TestSchedulerStartStop(t *testing.T) {
	s, err := New("@hourly", newSyncService(t))
	require.NoError(t, err)

	s.Start()
	s.Stop()
}

func TestRunSyncsAllGroups(t *testing.T) {
	s, err := New("@hourly", newSyncService(t))
	require.NoError(t, err)

	// An empty database is a valid no-op pass.
	s.run()
}
