package metrics

import (
	"testing"
)

func TestNew_GathersMetrics(t *testing.T) {
	m := New()

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	// Should include at least Go runtime and process collectors.
	if len(families) == 0 {
		t.Fatal("expected non-empty metric families from Gather()")
	}

	m.RequestsTotal.WithLabelValues("GET", "200", "myapp").Inc()
	m.ComponentInvocations.WithLabelValues("comp3").Inc()

	families, err = m.Registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	want := map[string]bool{
		"myapp_http_requests_total":         false,
		"myapp_component_invocations_total": false,
	}
	for _, f := range families {
		if _, ok := want[f.GetName()]; ok {
			want[f.GetName()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected %s in gathered metrics", name)
		}
	}
}

func TestNormalizeMethod(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{"GET", "GET"},
		{"POST", "POST"},
		{"PUT", "PUT"},
		{"DELETE", "DELETE"},
		{"PATCH", "PATCH"},
		{"HEAD", "HEAD"},
		{"OPTIONS", "OPTIONS"},
		{"FOOBAR", "other"},
		{"get", "other"},
		{"", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			got := NormalizeMethod(tt.method)
			if got != tt.want {
				t.Errorf("NormalizeMethod(%q) = %q, want %q", tt.method, got, tt.want)
			}
		})
	}
}

func TestNormalizeComponent(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"myapp", "myapp"},
		{"comp3", "comp3"},
		{"", "host"},
		{"comp4", "host"},
		{"MyApp", "host"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := NormalizeComponent(tt.id); got != tt.want {
				t.Errorf("NormalizeComponent(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}
