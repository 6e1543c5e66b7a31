package component

import (
	"net/http"

	"myapp/internal/model"
)

const myAppGreeting = "Hello from myapp!"

// MyApp answers every request with a fixed greeting.
type MyApp struct{}

// NewMyApp creates the myapp component.
func NewMyApp() *MyApp {
	return &MyApp{}
}

// ID implements model.Handler.
func (*MyApp) ID() string { return MyAppID }

// Handle ignores the request and returns the myapp greeting.
func (*MyApp) Handle(_ *http.Request) *model.Response {
	return textResponse(myAppGreeting)
}
