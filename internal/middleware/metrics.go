package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"myapp/internal/metrics"
	"myapp/internal/model"
)

// MetricsMiddleware returns an Echo middleware that records Prometheus metrics
// for each inbound request, labeled by the component that served it.
func MetricsMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m.RequestsInFlight.Inc()
			defer m.RequestsInFlight.Dec()

			start := time.Now()

			err := next(c)

			// An *echo.HTTPError has not been written yet; the central error
			// handler writes it later, so take the code from the error.
			statusCode := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					statusCode = he.Code
				}
			}

			componentID, _ := c.Get(model.ContextKeyComponent).(string)

			status := strconv.Itoa(statusCode)
			method := metrics.NormalizeMethod(c.Request().Method)
			comp := metrics.NormalizeComponent(componentID)
			duration := time.Since(start).Seconds()

			m.RequestsTotal.WithLabelValues(method, status, comp).Inc()
			m.RequestDuration.WithLabelValues(method, status, comp).Observe(duration)

			return err
		}
	}
}
