package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"myapp/internal/metrics"
	"myapp/internal/model"
)

// ComponentHandler adapts a model.Handler to Echo: it invokes the component
// once per request and writes the returned response to the wire.
type ComponentHandler struct {
	component model.Handler
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewComponentHandler creates a ComponentHandler. The metrics parameter is
// optional; pass nil to disable invocation counting.
func NewComponentHandler(comp model.Handler, m *metrics.Metrics, logger *slog.Logger) *ComponentHandler {
	return &ComponentHandler{
		component: comp,
		metrics:   m,
		logger:    logger.With("component", comp.ID()),
	}
}

// Handle invokes the component and copies its status, headers and body
// into the Echo response.
func (h *ComponentHandler) Handle(c echo.Context) error {
	c.Set(model.ContextKeyComponent, h.component.ID())

	resp := h.component.Handle(c.Request())
	if h.metrics != nil {
		h.metrics.ComponentInvocations.WithLabelValues(h.component.ID()).Inc()
	}

	header := c.Response().Header()
	for k, v := range resp.Header {
		header.Set(k, v)
	}
	c.Response().WriteHeader(resp.StatusCode)

	if _, err := c.Response().Write(resp.Body); err != nil {
		h.logger.Error("writing response body",
			"err", err,
			"path", c.Request().URL.Path,
		)
	}
	return nil
}
