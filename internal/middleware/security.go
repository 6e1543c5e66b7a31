package middleware

import (
	"github.com/labstack/echo/v4"
)

// hopByHopHeaders are connection-scoped and never reach a component.
var hopByHopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"TE",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// securityHeaders are set on every response.
var securityHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "DENY",
	"Referrer-Policy":        "no-referrer",
}

// SecurityHeaders returns an Echo middleware that strips hop-by-hop headers
// from the request and adds security headers to the response.
// Response headers are set before the handler runs so they are part of the
// header block even when the handler writes the body directly.
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, h := range hopByHopHeaders {
				c.Request().Header.Del(h)
			}

			header := c.Response().Header()
			for k, v := range securityHeaders {
				header.Set(k, v)
			}

			return next(c)
		}
	}
}
