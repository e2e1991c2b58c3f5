package health

import (
	"github.com/dmitrymomot/viewkit/core/handler"
	"github.com/dmitrymomot/viewkit/core/response"
)

// Liveness always answers "ALIVE". It checks no dependencies.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}
