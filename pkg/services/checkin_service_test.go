package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/event"
	"github.com/gatherhub/gatherhub/pkg/bus"
	testdb "github.com/gatherhub/gatherhub/test/database"
)

func seedCheckinCode(t *testing.T, client *ent.Client, eventID, code string, maxUses *int) *ent.CheckinCode {
	t.Helper()
	create := client.CheckinCode.Create().
		SetID(uuid.NewString()).
		SetEventID(eventID).
		SetCode(code)
	if maxUses != nil {
		create.SetMaxUses(*maxUses)
	}
	cc, err := create.Save(context.Background())
	require.NoError(t, err)
	return cc
}

func TestCheckinRecordsAttendance(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCheckinService(client.Client)
	ev := seedEvent(t, client.Client, nil)
	cc := seedCheckinCode(t, client.Client, ev.ID, "GOPHER", nil)
	ctx := context.Background()

	row, events, err := svc.CheckIn(ctx, ev.ID, "GOPHER", "u1")
	require.NoError(t, err)
	assert.Equal(t, ev.ID, row.EventID)
	require.NotNil(t, row.CodeID)
	assert.Equal(t, cc.ID, *row.CodeID)

	require.Len(t, events, 1)
	assert.Equal(t, bus.TypeEventCheckin, events[0].Type)
	assert.Equal(t, "u1", events[0].UserID())

	got, err := client.CheckinCode.Get(ctx, cc.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentUses)
}

func TestCheckinErrors(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCheckinService(client.Client)
	ev := seedEvent(t, client.Client, nil)
	seedCheckinCode(t, client.Client, ev.ID, "GOPHER", nil)
	ctx := context.Background()

	_, _, err := svc.CheckIn(ctx, "missing", "GOPHER", "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = svc.CheckIn(ctx, ev.ID, "WRONG", "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = svc.CheckIn(ctx, ev.ID, "GOPHER", "")
	assert.True(t, IsValidationError(err))

	// Double check-in.
	_, _, err = svc.CheckIn(ctx, ev.ID, "GOPHER", "u1")
	require.NoError(t, err)
	_, _, err = svc.CheckIn(ctx, ev.ID, "GOPHER", "u1")
	assert.ErrorIs(t, err, ErrConflict)

	// Cancelled event.
	cancelled := seedEvent(t, client.Client, func(c *ent.EventCreate) { c.SetStatus(event.StatusCancelled) })
	seedCheckinCode(t, client.Client, cancelled.ID, "GONE", nil)
	_, _, err = svc.CheckIn(ctx, cancelled.ID, "GONE", "u1")
	assert.ErrorIs(t, err, ErrGone)
}

func TestCheckinCodeExhaustion(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCheckinService(client.Client)
	ev := seedEvent(t, client.Client, nil)
	one := 1
	seedCheckinCode(t, client.Client, ev.ID, "LAST", &one)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = svc.CheckIn(ctx, ev.ID, "LAST", uuid.NewString())
		}(i)
	}
	wg.Wait()

	var ok, gone int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case err == ErrGone:
			gone++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, gone)

	rows, err := svc.ListByEvent(ctx, ev.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
