// Package component holds the greeting components served by the host.
package component

import (
	"net/http"

	"myapp/internal/model"
)

// Component IDs, as bound to routes in the config file.
const (
	MyAppID = "myapp"
	Comp3ID = "comp3"
)

// IDs lists every component shipped with the application.
func IDs() []string {
	return []string{MyAppID, Comp3ID}
}

// textResponse builds a 200 text/plain response carrying body.
func textResponse(body string) *model.Response {
	return &model.Response{
		StatusCode: http.StatusOK,
		Header:     map[string]string{"content-type": "text/plain"},
		Body:       []byte(body),
	}
}
