package model

import (
	"fmt"
	"strings"
)

// Wildcard suffixes accepted at the end of a route pattern.
var wildcardSuffixes = []string{"/...", "/*"}

// Route is a parsed component route. A wildcard route matches its prefix and
// every path below it; otherwise only the exact path matches.
type Route struct {
	Prefix   string // empty for the root wildcard "/..."
	Wildcard bool
}

// ParseRoute parses a route pattern such as "/...", "/comp3/..." or "/hello".
func ParseRoute(s string) (Route, error) {
	if s == "" || s[0] != '/' {
		return Route{}, fmt.Errorf("route %q must start with '/'", s)
	}

	r := Route{Prefix: s}
	for _, suffix := range wildcardSuffixes {
		if p, ok := strings.CutSuffix(s, suffix); ok {
			r = Route{Prefix: p, Wildcard: true}
			break
		}
	}

	if strings.ContainsAny(r.Prefix, "*:") || strings.Contains(r.Prefix, "...") {
		return Route{}, fmt.Errorf("route %q: wildcards are only allowed as a trailing /... or /*", s)
	}
	if r.Prefix != "/" {
		r.Prefix = strings.TrimSuffix(r.Prefix, "/")
	}
	if r.Prefix == "" && !r.Wildcard {
		r.Prefix = "/"
	}
	return r, nil
}

// Paths returns the echo path patterns that together cover r.
func (r Route) Paths() []string {
	switch {
	case !r.Wildcard:
		return []string{r.Prefix}
	case r.Prefix == "":
		return []string{"/*"}
	default:
		return []string{r.Prefix, r.Prefix + "/*"}
	}
}

// Covers reports whether a request for path would be served by r.
func (r Route) Covers(path string) bool {
	if !r.Wildcard {
		return path == r.Prefix
	}
	return r.Prefix == "" || path == r.Prefix || strings.HasPrefix(path, r.Prefix+"/")
}

// IsCatchAll reports whether r is the root wildcard.
func (r Route) IsCatchAll() bool {
	return r.Wildcard && r.Prefix == ""
}

func (r Route) String() string {
	if r.Wildcard {
		return r.Prefix + "/..."
	}
	return r.Prefix
}
