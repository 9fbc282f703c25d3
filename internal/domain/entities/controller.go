package entities

import "net/http"

// ControllerBind describes where an HTTP controller is mounted.
type ControllerBind struct {
	Method string
	Path   string
}

// Controller is an HTTP endpoint served by the application.
type Controller interface {
	GetBind() ControllerBind
	Execute(w http.ResponseWriter, r *http.Request)
}
