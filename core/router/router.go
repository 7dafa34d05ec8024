package router

import (
	"net/http"

	"github.com/junctionio/junction/core/handler"
)

// Router is the main routing interface: an ordered route table plus the
// dispatch logic that serves it. Registration is expected to finish before
// the router starts serving requests; the table is read-only from then on,
// which is what makes lock-free concurrent dispatch safe. Registering after
// serving has started is undefined behavior.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	// HTTP method handlers. Each panics on registration failure;
	// Register is the fallible form they wrap.
	Get(path string, h handler.HandlerFunc[C])
	Post(path string, h handler.HandlerFunc[C])
	Put(path string, h handler.HandlerFunc[C])
	Delete(path string, h handler.HandlerFunc[C])
	Options(path string, h handler.HandlerFunc[C])
	Any(path string, h handler.HandlerFunc[C])

	// Register adds a binding for the given method and path, reporting
	// conflicts as *DuplicateBindingError instead of panicking.
	Register(method Method, path string, h handler.HandlerFunc[C]) error

	// Use installs the single pre-dispatch hook, replacing any previous one.
	Use(hook handler.Hook[C])

	// Dispatch routes one request and returns the payload to render.
	// It is the host-agnostic core that ServeHTTP wraps.
	Dispatch(ctx C) (*handler.Payload, error)
}

// Routes provides route introspection capabilities for debugging and monitoring.
type Routes interface {
	Routes() []Route
}

// Route describes a single route in the router with its method and path.
type Route struct {
	Method Method
	Path   string
}

// New creates a new router with the given options.
// The router supports generic context types for type-safe request handling.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
