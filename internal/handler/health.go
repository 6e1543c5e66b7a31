package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"myapp/internal/config"
)

// Version is a string type for dependency injection of the build version.
type Version string

// HealthHandler serves the host's own health and status endpoints.
type HealthHandler struct {
	cfg     *config.Config
	version Version
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(cfg *config.Config, v Version) *HealthHandler {
	return &HealthHandler{cfg: cfg, version: v}
}

// Healthz returns a simple OK response for liveness probes.
func (h *HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

type statusResponse struct {
	Status     string            `json:"status"`
	Version    string            `json:"version"`
	Components map[string]string `json:"components"`
}

// Status reports the build version and the route each component is bound to.
func (h *HealthHandler) Status(c echo.Context) error {
	routes := make(map[string]string, len(h.cfg.Components))
	for id, cc := range h.cfg.Components {
		routes[id] = cc.Route
	}
	return c.JSON(http.StatusOK, statusResponse{
		Status:     "ok",
		Version:    string(h.version),
		Components: routes,
	})
}
