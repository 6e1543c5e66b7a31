package component

import (
	"net/http"

	"myapp/internal/model"
)

const comp3Greeting = "Hello from comp3!"

// Comp3 answers every request with a fixed greeting.
type Comp3 struct{}

// NewComp3 creates the comp3 component.
func NewComp3() *Comp3 {
	return &Comp3{}
}

// ID implements model.Handler.
func (*Comp3) ID() string { return Comp3ID }

// Handle ignores the request and returns the comp3 greeting.
func (*Comp3) Handle(_ *http.Request) *model.Response {
	return textResponse(comp3Greeting)
}
