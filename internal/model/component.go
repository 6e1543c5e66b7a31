// Package model defines the types shared between the host and its components.
package model

import "net/http"

// ContextKeyComponent is the echo context key under which the host records
// the ID of the component serving the current request.
const ContextKeyComponent = "component"

// Response is what a component hands back to the host. It is built fresh
// for every invocation; the host takes ownership once it is returned.
type Response struct {
	StatusCode int
	Header     map[string]string
	Body       []byte
}

// Handler is a component the host can invoke once per inbound request.
type Handler interface {
	// ID returns the stable component identifier used for route binding,
	// logging and metric labels.
	ID() string
	// Handle answers a single request. It must be safe for concurrent use.
	Handle(req *http.Request) *Response
}
