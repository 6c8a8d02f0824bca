package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/pkg/sync"
)

// syncAllHandler handles POST /api/v1/sync.
// Runs synchronously; a batch sync is bounded by the per-connection
// rate limits and the caller is an operator who wants the result.
func (s *Server) syncAllHandler(c *echo.Context) error {
	opts := sync.SyncAllOptions{}
	if v := c.QueryParam("force"); v != "" {
		force, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid force: must be a boolean")
		}
		opts.Force = force
	}

	result, err := s.syncSvc.SyncAllGroups(c.Request().Context(), opts)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// syncGroupHandler handles POST /api/v1/groups/:slug/sync.
func (s *Server) syncGroupHandler(c *echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "group slug is required")
	}

	result, err := s.syncSvc.SyncGroupByUrlname(c.Request().Context(), slug)
	if err != nil {
		if ent.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "resource not found")
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// syncLogsHandler handles GET /api/v1/sync/logs.
func (s *Server) syncLogsHandler(c *echo.Context) error {
	opts := sync.SyncLogOptions{
		GroupID: c.QueryParam("group_id"),
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be a positive integer")
		}
		opts.Limit = n
	}

	logs, err := s.syncSvc.GetSyncLogs(c.Request().Context(), opts)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, logs)
}
