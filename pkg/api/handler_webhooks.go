package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/ent/webhook"
	"github.com/gatherhub/gatherhub/ent/webhookdelivery"
)

// createWebhookHandler handles POST /api/v1/webhooks.
func (s *Server) createWebhookHandler(c *echo.Context) error {
	var req CreateWebhookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	u, err := url.Parse(req.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "url must be a valid http(s) URL")
	}
	if req.Secret == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "secret field is required")
	}
	if len(req.EventTypes) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "event_types must name at least one type")
	}

	hook, err := s.dbClient.Webhook.Create().
		SetID(uuid.NewString()).
		SetURL(req.URL).
		SetSecret(req.Secret).
		SetEventTypes(req.EventTypes).
		Save(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, webhookResponse(hook))
}

// listWebhooksHandler handles GET /api/v1/webhooks.
func (s *Server) listWebhooksHandler(c *echo.Context) error {
	hooks, err := s.dbClient.Webhook.Query().
		Order(ent.Asc(webhook.FieldCreatedAt)).
		All(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]*WebhookResponse, 0, len(hooks))
	for _, hook := range hooks {
		out = append(out, webhookResponse(hook))
	}
	return c.JSON(http.StatusOK, out)
}

// deleteWebhookHandler handles DELETE /api/v1/webhooks/:id.
func (s *Server) deleteWebhookHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "webhook id is required")
	}

	err := s.dbClient.Webhook.DeleteOneID(id).Exec(c.Request().Context())
	if err != nil {
		if ent.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "resource not found")
		}
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listDeliveriesHandler handles GET /api/v1/webhooks/:id/deliveries.
// Deliveries are the immutable audit trail, newest first.
func (s *Server) listDeliveriesHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "webhook id is required")
	}
	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 200 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be 1-200")
		}
		limit = n
	}

	rows, err := s.dbClient.WebhookDelivery.Query().
		Where(webhookdelivery.WebhookID(id)).
		Order(ent.Desc(webhookdelivery.FieldDeliveredAt)).
		Limit(limit).
		All(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

func webhookResponse(hook *ent.Webhook) *WebhookResponse {
	return &WebhookResponse{
		ID:         hook.ID,
		URL:        hook.URL,
		EventTypes: hook.EventTypes,
		Active:     hook.Active,
		CreatedAt:  hook.CreatedAt,
	}
}
