package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/gatherhub/gatherhub/pkg/services"
)

// listEventsHandler handles GET /api/v1/events.
func (s *Server) listEventsHandler(c *echo.Context) error {
	filter := services.EventFilter{
		GroupSlug: c.QueryParam("group"),
	}
	if v := c.QueryParam("upcoming"); v != "" {
		up, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid upcoming: must be a boolean")
		}
		filter.UpcomingOnly = up
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be a positive integer")
		}
		filter.Limit = n
	}

	events, err := s.catalog.ListEvents(c.Request().Context(), filter)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, events)
}

// getEventHandler handles GET /api/v1/events/:id.
func (s *Server) getEventHandler(c *echo.Context) error {
	eventID := c.Param("id")
	if eventID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "event id is required")
	}

	ev, err := s.catalog.GetEvent(c.Request().Context(), eventID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, ev)
}

// listGroupsHandler handles GET /api/v1/groups.
func (s *Server) listGroupsHandler(c *echo.Context) error {
	groups, err := s.catalog.ListGroups(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, groups)
}

// getGroupHandler handles GET /api/v1/groups/:slug.
func (s *Server) getGroupHandler(c *echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "group slug is required")
	}

	g, err := s.catalog.GetGroupBySlug(c.Request().Context(), slug)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, g)
}
