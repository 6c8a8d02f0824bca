package api

import (
	echo "github.com/labstack/echo/v5"
)

// apiSecurityHeaders go on every response. The surface is a JSON API
// plus a WebSocket upgrade; nothing here is meant to render in a
// browser, so framing is denied outright and MIME sniffing is off.
var apiSecurityHeaders = map[string]string{
	"X-Frame-Options":        "DENY",
	"X-Content-Type-Options": "nosniff",
	"Referrer-Policy":        "no-referrer",
}

func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			for name, value := range apiSecurityHeaders {
				h.Set(name, value)
			}
			return next(c)
		}
	}
}
