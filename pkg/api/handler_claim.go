package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// claimHandler handles POST /api/v1/claim.
func (s *Server) claimHandler(c *echo.Context) error {
	var req ClaimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "code field is required")
	}

	badge, events, err := s.claims.Claim(c.Request().Context(), req.Code, extractUser(c))
	if err != nil {
		return mapServiceError(err)
	}
	s.emit(c, events)

	return c.JSON(http.StatusOK, &ClaimResponse{
		BadgeID:   badge.ID,
		BadgeSlug: badge.Slug,
		Name:      badge.Name,
		Points:    badge.Points,
	})
}

// checkinHandler handles POST /api/v1/events/:id/checkin.
func (s *Server) checkinHandler(c *echo.Context) error {
	eventID := c.Param("id")
	if eventID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "event id is required")
	}

	var req CheckinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "code field is required")
	}

	row, events, err := s.checkins.CheckIn(c.Request().Context(), eventID, req.Code, extractUser(c))
	if err != nil {
		return mapServiceError(err)
	}
	s.emit(c, events)

	return c.JSON(http.StatusOK, &CheckinResponse{
		EventID:     row.EventID,
		UserID:      row.UserID,
		CheckedInAt: row.CheckedInAt,
	})
}
