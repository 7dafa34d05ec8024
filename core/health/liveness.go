package health

import (
	"github.com/junctionio/junction/core/handler"
	"github.com/junctionio/junction/core/response"
)

// Liveness indicates if the service process is running.
// Always returns "ALIVE" with 200 OK. No dependency checks.
//
// Example:
//
//	r.Get("/healthz", health.Liveness[*myapp.Context])
func Liveness[C handler.Context](C) (*handler.Payload, error) {
	return response.String("ALIVE"), nil
}

// NoContent returns HTTP 204 without body. Ideal for high-frequency checks.
//
// Example:
//
//	r.Get("/ping", health.NoContent[*myapp.Context])
func NoContent[C handler.Context](C) (*handler.Payload, error) {
	return response.NoContent(), nil
}
