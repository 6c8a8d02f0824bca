package webhooks

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/webhookdelivery"
	"github.com/gatherhub/gatherhub/pkg/bus"
	testdb "github.com/gatherhub/gatherhub/test/database"
)

func seedWebhook(t *testing.T, client *ent.Client, url, secret string, types []string) *ent.Webhook {
	t.Helper()
	hook, err := client.Webhook.Create().
		SetID(uuid.NewString()).
		SetURL(url).
		SetSecret(secret).
		SetEventTypes(types).
		Save(context.Background())
	require.NoError(t, err)
	return hook
}

func TestDeliverSignedPayload(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	var gotBody []byte
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotHeaders = r.Header.Clone()
		_, _ = w.Write([]byte(`ok`))
	}))
	defer srv.Close()

	hook := seedWebhook(t, client.Client, srv.URL, "s3cret", []string{bus.TypeEventCheckin})
	d := NewDeliverer(client.Client)

	env := bus.Envelope{
		Type:      bus.TypeEventCheckin,
		Payload:   map[string]interface{}{"event_id": "e1", "user_id": "u1"},
		Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, d.Handle(ctx, env))

	// Wire shape: {id, type, timestamp, data}.
	var wire map[string]interface{}
	require.NoError(t, json.Unmarshal(gotBody, &wire))
	assert.Equal(t, bus.TypeEventCheckin, wire["type"])
	assert.Equal(t, "2026-08-01T12:00:00Z", wire["timestamp"])
	assert.Equal(t, "e1", wire["data"].(map[string]interface{})["event_id"])
	assert.NotEmpty(t, wire["id"])

	// Signature verifies against the raw body.
	sigHeader := gotHeaders.Get("X-Webhook-Signature")
	require.True(t, strings.HasPrefix(sigHeader, "sha256="))
	mac := hmac.New(sha256.New, []byte("s3cret"))
	mac.Write(gotBody)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), strings.TrimPrefix(sigHeader, "sha256="))

	assert.Equal(t, bus.TypeEventCheckin, gotHeaders.Get("X-Event-Type"))
	assert.Equal(t, wire["id"], gotHeaders.Get("X-Delivery-ID"))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.NotEmpty(t, gotHeaders.Get("User-Agent"))

	delivery, err := client.WebhookDelivery.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, hook.ID, delivery.WebhookID)
	assert.Equal(t, 200, delivery.StatusCode)
	require.NotNil(t, delivery.ResponseBody)
	assert.Equal(t, "ok", *delivery.ResponseBody)
}

func TestDeliverFiltersBySubscription(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
	}))
	defer srv.Close()

	seedWebhook(t, client.Client, srv.URL, "s", []string{bus.TypeEventRSVP})
	seedWebhook(t, client.Client, srv.URL, "s", []string{"*"})
	inactive, err := client.Webhook.Create().
		SetID(uuid.NewString()).
		SetURL(srv.URL).
		SetSecret("s").
		SetEventTypes([]string{"*"}).
		SetActive(false).
		Save(ctx)
	require.NoError(t, err)
	_ = inactive

	d := NewDeliverer(client.Client)
	require.NoError(t, d.Handle(ctx, bus.New(bus.TypeEventCheckin, nil, bus.Metadata{})))

	// Only the wildcard subscriber matches; the inactive one never fires.
	assert.Equal(t, 1, hits)
}

func TestDeliverNetworkErrorRecorded(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	seedWebhook(t, client.Client, url, "s", []string{"*"})
	d := NewDeliverer(client.Client)
	require.NoError(t, d.Handle(ctx, bus.New(bus.TypeEventCheckin, nil, bus.Metadata{})))

	delivery, err := client.WebhookDelivery.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, delivery.StatusCode)
	require.NotNil(t, delivery.ErrorMessage)
	assert.NotEmpty(t, *delivery.ErrorMessage)
}

func TestDeliverTruncatesResponseBody(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 10_000)))
	}))
	defer srv.Close()

	seedWebhook(t, client.Client, srv.URL, "s", []string{"*"})
	d := NewDeliverer(client.Client)
	require.NoError(t, d.Handle(ctx, bus.New(bus.TypeEventCheckin, nil, bus.Metadata{})))

	delivery, err := client.WebhookDelivery.Query().Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, delivery.ResponseBody)
	assert.Len(t, *delivery.ResponseBody, maxResponseBody)
}

func TestDeliverFailureIsolation(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	okHits := 0
	okSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		okHits++
	}))
	defer okSrv.Close()
	failSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failSrv.Close()

	seedWebhook(t, client.Client, failSrv.URL, "s", []string{"*"})
	seedWebhook(t, client.Client, okSrv.URL, "s", []string{"*"})

	d := NewDeliverer(client.Client)
	require.NoError(t, d.Handle(ctx, bus.New(bus.TypeEventCheckin, nil, bus.Metadata{})))

	assert.Equal(t, 1, okHits)

	// Both attempts leave a delivery row.
	count, err := client.WebhookDelivery.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	failed, err := client.WebhookDelivery.Query().
		Where(webhookdelivery.StatusCode(http.StatusInternalServerError)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)
}
