// Package config handles TOML configuration loading and validation.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	toml "github.com/pelletier/go-toml/v2"

	"myapp/internal/component"
	"myapp/internal/model"
)

// configSearchPaths lists paths checked in order when no explicit config is given.
var configSearchPaths = []string{
	"/etc/myapp/config.toml",
	"configs/config.toml",
}

// defaultRoutes binds each shipped component when the config file omits it.
var defaultRoutes = map[string]string{
	component.MyAppID: "/...",
	component.Comp3ID: "/comp3/...",
}

// reservedRoutes are served by the host itself and cannot be bound to a component.
var reservedRoutes = []string{"/healthz", "/app/status"}

// CLI holds command-line arguments parsed by Kong.
type CLI struct {
	Config   string           `kong:"short='c',help='Path to TOML config file.',env='CONFIG_PATH'"`
	Host     string           `kong:"help='Listen host (overrides config).',env='HOST'"`
	Port     int              `kong:"short='p',help='Listen port (overrides config).',env='PORT'"`
	LogLevel string           `kong:"help='Log level: debug|info|warn|error (overrides config).',env='LOG_LEVEL'"`
	Version  kong.VersionFlag `kong:"short='v',help='Print version and exit.'"`
}

// Config is the top-level application configuration.
type Config struct {
	Server     ServerConfig               `toml:"server"`
	Components map[string]ComponentConfig `toml:"components"`
	Log        LogConfig                  `toml:"log"`
	Metrics    MetricsConfig              `toml:"metrics"`

	filePath string // resolved config file path (unexported)
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string          `toml:"host"`
	Port         int             `toml:"port"` // 0 means "use default" (3000); TOML cannot distinguish 0 from unset
	BodyMaxBytes int64           `toml:"body_max_bytes"`
	RateLimit    RateLimitConfig `toml:"rate_limit"`
}

// RateLimitConfig controls per-IP request rate limiting.
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// ComponentConfig binds a component to an HTTP route.
type ComponentConfig struct {
	Route string `toml:"route"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Load reads the TOML config file and applies CLI overrides.
// When no explicit path is given (via --config or CONFIG_PATH), it searches
// /etc/myapp/config.toml then configs/config.toml, and falls back to
// built-in defaults if neither exists.
func Load(cli *CLI) (*Config, error) {
	var cfg Config

	path := cli.Config
	if path == "" {
		path = findConfig()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		cfg.filePath = path
	}

	cfg.applyCLI(cli)
	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// applyCLI overrides config values with non-zero CLI flags.
func (c *Config) applyCLI(cli *CLI) {
	if cli.Host != "" {
		c.Server.Host = cli.Host
	}
	if cli.Port != 0 {
		c.Server.Port = cli.Port
	}
	if cli.LogLevel != "" {
		c.Log.Level = cli.LogLevel
	}
}

func (c *Config) validate() error {
	// Numeric bounds.
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 0–65535; got %d", c.Server.Port)
	}
	if c.Server.BodyMaxBytes < 0 {
		return fmt.Errorf("server.body_max_bytes must be non-negative; got %d", c.Server.BodyMaxBytes)
	}
	if c.Server.RateLimit.Enabled && c.Server.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("server.rate_limit.requests_per_second must be > 0 when rate limiting is enabled; got %v", c.Server.RateLimit.RequestsPerSecond)
	}

	// Log fields.
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be one of: json, text; got %q", c.Log.Format)
	}

	reserved := slices.Clone(reservedRoutes)
	if c.Metrics.Enabled {
		p := c.Metrics.Path
		if p[0] != '/' {
			return fmt.Errorf("metrics.path must start with '/'; got %q", p)
		}
		for _, res := range reservedRoutes {
			if p == res || strings.HasPrefix(p, res+"/") {
				return fmt.Errorf("metrics.path %q conflicts with reserved route %q", p, res)
			}
		}
		reserved = append(reserved, p)
	}

	return c.validateComponents(reserved)
}

// validateComponents checks every component binding: the ID must be known,
// the route must parse, must not shadow a host route and must not repeat
// another component's route.
func (c *Config) validateComponents(reserved []string) error {
	seen := make(map[model.Route]string, len(c.Components))
	for _, id := range c.ComponentIDs() {
		raw := c.Components[id].Route
		if _, ok := defaultRoutes[id]; !ok {
			return fmt.Errorf("components.%s: unknown component (known: %s)", id, strings.Join(component.IDs(), ", "))
		}

		r, err := model.ParseRoute(raw)
		if err != nil {
			return fmt.Errorf("components.%s.route: %w", id, err)
		}

		if !r.IsCatchAll() {
			for _, res := range reserved {
				if r.Covers(res) || strings.HasPrefix(r.Prefix, res+"/") {
					return fmt.Errorf("components.%s.route %q conflicts with reserved route %q", id, raw, res)
				}
			}
		}

		// An exact route and a wildcard on the same prefix may coexist;
		// the exact route wins for the bare prefix.
		if other, dup := seen[r]; dup {
			return fmt.Errorf("components.%s.route %q duplicates the route of component %q", id, raw, other)
		}
		seen[r] = id
	}
	return nil
}

// setDefaults fills zero-valued fields with sensible defaults.
// For integer fields (Port, BodyMaxBytes), zero means "unset" because TOML
// cannot distinguish between an explicit 0 and an omitted key.
func (c *Config) setDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Server.BodyMaxBytes == 0 {
		c.Server.BodyMaxBytes = 1024 * 1024 // 1 MB
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Components == nil {
		c.Components = make(map[string]ComponentConfig, len(defaultRoutes))
	}
	for id, route := range defaultRoutes {
		if c.Components[id].Route == "" {
			c.Components[id] = ComponentConfig{Route: route}
		}
	}
}

// ComponentIDs returns the configured component IDs in sorted order.
func (c *Config) ComponentIDs() []string {
	ids := make([]string, 0, len(c.Components))
	for id := range c.Components {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// findConfig returns the first config path that exists, or empty string.
func findConfig() string {
	return findConfigInPaths(configSearchPaths)
}

// findConfigInPaths returns the first path that exists on disk, or empty string.
func findConfigInPaths(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Addr returns the server listen address as host:port.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// WarnPermissions logs a warning if the config file is readable by group or others.
func (c *Config) WarnPermissions(logger *slog.Logger) {
	if c.filePath == "" {
		return
	}
	info, err := os.Stat(c.filePath)
	if err != nil {
		return
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		logger.Warn("config file is readable by group/others; consider chmod 600",
			"path", c.filePath,
			"mode", fmt.Sprintf("%04o", perm),
		)
	}
}
