package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/gatherhub/gatherhub/ent"
)

// createRSVPHandler handles POST /api/v1/events/:id/rsvp.
func (s *Server) createRSVPHandler(c *echo.Context) error {
	eventID := c.Param("id")
	if eventID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "event id is required")
	}

	row, events, err := s.rsvps.Create(c.Request().Context(), eventID, extractUser(c))
	if err != nil {
		return mapServiceError(err)
	}
	s.emit(c, events)

	return c.JSON(http.StatusCreated, rsvpResponse(row))
}

// cancelRSVPHandler handles DELETE /api/v1/events/:id/rsvp.
func (s *Server) cancelRSVPHandler(c *echo.Context) error {
	eventID := c.Param("id")
	if eventID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "event id is required")
	}

	row, events, err := s.rsvps.Cancel(c.Request().Context(), eventID, extractUser(c))
	if err != nil {
		return mapServiceError(err)
	}
	s.emit(c, events)

	return c.JSON(http.StatusOK, rsvpResponse(row))
}

// listMyRSVPsHandler handles GET /api/v1/me/rsvps.
func (s *Server) listMyRSVPsHandler(c *echo.Context) error {
	rows, err := s.rsvps.ListByUser(c.Request().Context(), extractUser(c))
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]*RSVPResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, rsvpResponse(row))
	}
	return c.JSON(http.StatusOK, out)
}

func rsvpResponse(row *ent.RSVP) *RSVPResponse {
	return &RSVPResponse{
		EventID:          row.EventID,
		UserID:           row.UserID,
		Status:           string(row.Status),
		WaitlistPosition: row.WaitlistPosition,
	}
}
