package api

import (
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// mcpBodyLimit bounds the JSON-RPC request body read.
const mcpBodyLimit = 2 << 20

// mcpHandler handles POST /mcp. The dispatcher owns all JSON-RPC
// semantics including error shapes; this route only moves bytes and
// derives the caller identity.
func (s *Server) mcpHandler(c *echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, mcpBodyLimit))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}

	out := s.mcpDispatcher.Dispatch(c.Request().Context(), body, s.mcpAuth(c))
	if out == nil {
		// All notifications: acknowledge with no body.
		return c.NoContent(http.StatusAccepted)
	}
	return c.JSONBlob(http.StatusOK, out)
}
