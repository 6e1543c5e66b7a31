package model

import (
	"slices"
	"testing"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		in        string
		wantPaths []string
		wantStr   string
	}{
		{"/...", []string{"/*"}, "/..."},
		{"/*", []string{"/*"}, "/..."},
		{"/comp3/...", []string{"/comp3", "/comp3/*"}, "/comp3/..."},
		{"/comp3/*", []string{"/comp3", "/comp3/*"}, "/comp3/..."},
		{"/hello", []string{"/hello"}, "/hello"},
		{"/hello/", []string{"/hello"}, "/hello"},
		{"/", []string{"/"}, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := ParseRoute(tt.in)
			if err != nil {
				t.Fatalf("ParseRoute(%q) error = %v", tt.in, err)
			}
			if got := r.Paths(); !slices.Equal(got, tt.wantPaths) {
				t.Errorf("Paths() = %v, want %v", got, tt.wantPaths)
			}
			if got := r.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestParseRoute_Invalid(t *testing.T) {
	for _, in := range []string{"", "comp3", "/a/*/b", "/a/.../b", "/users/:id"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseRoute(in); err == nil {
				t.Errorf("ParseRoute(%q) expected error, got nil", in)
			}
		})
	}
}

func TestRoute_Covers(t *testing.T) {
	root, _ := ParseRoute("/...")
	comp3, _ := ParseRoute("/comp3/...")
	exact, _ := ParseRoute("/hello")

	tests := []struct {
		name  string
		route Route
		path  string
		want  bool
	}{
		{"root covers anything", root, "/anything/below", true},
		{"prefix covers itself", comp3, "/comp3", true},
		{"prefix covers child", comp3, "/comp3/x/y", true},
		{"prefix rejects sibling", comp3, "/comp30", false},
		{"exact covers itself", exact, "/hello", true},
		{"exact rejects child", exact, "/hello/x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.route.Covers(tt.path); got != tt.want {
				t.Errorf("Covers(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}

	if !root.IsCatchAll() {
		t.Error("root wildcard should be catch-all")
	}
	if comp3.IsCatchAll() {
		t.Error("prefixed wildcard should not be catch-all")
	}
}
