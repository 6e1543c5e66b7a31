package handler

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"myapp/internal/config"
	"myapp/internal/metrics"
	"myapp/internal/model"
)

// RouteParams collects everything RegisterRoutes needs. Components arrive
// through the "components" value group.
type RouteParams struct {
	fx.In

	Echo       *echo.Echo
	Config     *config.Config
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
	Health     *HealthHandler
	Components []model.Handler `group:"components"`
}

// RegisterRoutes wires the host endpoints and binds every component to the
// route configured for it.
func RegisterRoutes(p RouteParams) error {
	p.Echo.GET("/healthz", p.Health.Healthz)
	p.Echo.GET("/app/status", p.Health.Status)

	if p.Config.Metrics.Enabled {
		p.Echo.GET(p.Config.Metrics.Path, echo.WrapHandler(
			promhttp.HandlerFor(p.Metrics.Registry, promhttp.HandlerOpts{}),
		))
	}

	routes := make([]model.Route, len(p.Components))
	exact := make(map[string]bool)
	for i, comp := range p.Components {
		cc, ok := p.Config.Components[comp.ID()]
		if !ok {
			return fmt.Errorf("component %q has no route configured", comp.ID())
		}
		route, err := model.ParseRoute(cc.Route)
		if err != nil {
			return fmt.Errorf("component %q: %w", comp.ID(), err)
		}
		routes[i] = route
		if !route.Wildcard {
			exact[route.Prefix] = true
		}
	}

	for i, comp := range p.Components {
		route := routes[i]
		h := NewComponentHandler(comp, p.Metrics, p.Logger)
		for _, path := range route.Paths() {
			// An exact route on a wildcard's bare prefix takes that path.
			if route.Wildcard && path == route.Prefix && exact[path] {
				continue
			}
			p.Echo.Any(path, h.Handle)
		}
		p.Logger.Info("component bound", "component", comp.ID(), "route", route.String())
	}

	return nil
}
