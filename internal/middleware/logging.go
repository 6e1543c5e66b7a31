// Package middleware provides Echo middleware for the host server.
package middleware

import (
	"errors"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"myapp/internal/model"
)

// RequestLogger returns an Echo middleware that logs each request with slog.
// The component attribute is empty for routes served by the host itself.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()
			// Echo's error handler writes *echo.HTTPError responses after the
			// chain returns, so take the code from the error.
			status := res.Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}
			componentID, _ := c.Get(model.ContextKeyComponent).(string)

			logger.Info("request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"component", componentID,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
				"remote_ip", c.RealIP(),
				"bytes_out", res.Size,
			)

			return err
		}
	}
}
