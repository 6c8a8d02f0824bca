package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// addFavoriteHandler handles PUT /api/v1/me/favorites/:slug.
// Idempotent: favoriting an already-favorited group succeeds quietly.
func (s *Server) addFavoriteHandler(c *echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "group slug is required")
	}

	alreadyExisted, events, err := s.favorites.Add(c.Request().Context(), extractUser(c), slug)
	if err != nil {
		return mapServiceError(err)
	}
	s.emit(c, events)

	status := http.StatusCreated
	if alreadyExisted {
		status = http.StatusOK
	}
	return c.JSON(status, map[string]string{"group_slug": slug})
}

// removeFavoriteHandler handles DELETE /api/v1/me/favorites/:slug.
func (s *Server) removeFavoriteHandler(c *echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "group slug is required")
	}

	events, err := s.favorites.Remove(c.Request().Context(), extractUser(c), slug)
	if err != nil {
		return mapServiceError(err)
	}
	s.emit(c, events)

	return c.NoContent(http.StatusNoContent)
}

// listFavoritesHandler handles GET /api/v1/me/favorites.
func (s *Server) listFavoritesHandler(c *echo.Context) error {
	groups, err := s.favorites.ListForUser(c.Request().Context(), extractUser(c))
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]*FavoriteResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, &FavoriteResponse{GroupSlug: g.Slug, GroupName: g.Name})
	}
	return c.JSON(http.StatusOK, out)
}
