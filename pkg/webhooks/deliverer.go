// Package webhooks delivers domain events to subscriber endpoints with
// HMAC-signed payloads and an immutable delivery audit trail.
package webhooks

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/webhook"
	"github.com/gatherhub/gatherhub/pkg/bus"
	"github.com/gatherhub/gatherhub/pkg/version"
)

// maxResponseBody caps the stored subscriber response at 4 KiB.
const maxResponseBody = 4096

// Deliverer is a wildcard queue handler that POSTs every domain event to
// the active webhooks subscribed to its type. Deliveries run in parallel;
// a failing endpoint does not affect others, and every attempt writes a
// delivery row.
type Deliverer struct {
	client     *ent.Client
	httpClient *http.Client
	logger     *slog.Logger
}

// NewDeliverer creates a deliverer with a 15s outbound timeout.
func NewDeliverer(client *ent.Client) *Deliverer {
	return &Deliverer{
		client:     client,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     slog.With("component", "webhooks"),
	}
}

// Handle fans one event out to all matching webhooks.
func (d *Deliverer) Handle(ctx context.Context, env bus.Envelope) error {
	hooks, err := d.client.Webhook.Query().
		Where(webhook.Active(true)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list webhooks: %w", err)
	}

	var wg sync.WaitGroup
	for _, hook := range hooks {
		if !subscribed(hook.EventTypes, env.Type) {
			continue
		}
		wg.Add(1)
		go func(hook *ent.Webhook) {
			defer wg.Done()
			d.deliver(ctx, hook, env)
		}(hook)
	}
	wg.Wait()
	return nil
}

// subscribed reports whether the type set admits eventType. "*" subscribes
// to everything.
func subscribed(types []string, eventType string) bool {
	for _, t := range types {
		if t == "*" || t == eventType {
			return true
		}
	}
	return false
}

func (d *Deliverer) deliver(ctx context.Context, hook *ent.Webhook, env bus.Envelope) {
	deliveryID := uuid.NewString()
	body, err := json.Marshal(map[string]interface{}{
		"id":        deliveryID,
		"type":      env.Type,
		"timestamp": env.Timestamp.Format(time.RFC3339),
		"data":      env.Payload,
	})
	if err != nil {
		d.logger.Error("failed to marshal webhook payload", "webhook", hook.ID, "error", err)
		return
	}

	statusCode := 0
	responseBody := ""
	errorMessage := ""

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hook.URL, bytes.NewReader(body))
	if err != nil {
		errorMessage = err.Error()
	} else {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", version.Full())
		req.Header.Set("X-Event-Type", env.Type)
		req.Header.Set("X-Delivery-ID", deliveryID)
		req.Header.Set("X-Webhook-Signature", "sha256="+sign(hook.Secret, body))

		resp, err := d.httpClient.Do(req)
		if err != nil {
			errorMessage = err.Error()
		} else {
			statusCode = resp.StatusCode
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
			_ = resp.Body.Close()
			if readErr == nil {
				responseBody = string(raw)
			}
		}
	}

	d.record(ctx, deliveryID, hook.ID, env, statusCode, responseBody, errorMessage)
	if errorMessage != "" || statusCode >= 400 {
		d.logger.Warn("webhook delivery failed",
			"webhook", hook.ID,
			"type", env.Type,
			"status", statusCode,
			"error", errorMessage)
	}
}

// record writes the audit row. A delivery row exists for every attempt,
// successful or not.
func (d *Deliverer) record(ctx context.Context, deliveryID, webhookID string, env bus.Envelope, statusCode int, responseBody, errorMessage string) {
	create := d.client.WebhookDelivery.Create().
		SetID(deliveryID).
		SetWebhookID(webhookID).
		SetEventType(env.Type).
		SetPayload(env.Payload).
		SetStatusCode(statusCode)
	if responseBody != "" {
		create.SetResponseBody(responseBody)
	}
	if errorMessage != "" {
		if len(errorMessage) > 512 {
			errorMessage = errorMessage[:512]
		}
		create.SetErrorMessage(errorMessage)
	}
	if err := create.Exec(ctx); err != nil {
		d.logger.Error("failed to record webhook delivery", "webhook", webhookID, "error", err)
	}
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
