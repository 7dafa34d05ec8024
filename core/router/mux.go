package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/junctionio/junction/core/handler"
)

// mux is the private implementation of Router interface.
type mux[C handler.Context] struct {
	table        *table[C]
	hook         handler.Hook[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger
}

// newMux creates a new router instance.
func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		table:        &table[C]{},
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	for _, opt := range opts {
		opt(m)
	}

	// If no context factory provided, require it for non-default contexts
	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request) C {
			// Only support default *Context type without factory
			// For custom contexts, user must provide a factory
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return m
}

// Dispatch routes a single request and returns the payload to render.
//
// The hook, when set, runs first, whether or not the request ends up
// matching a binding. Resolution compares the request path byte for byte
// against registered paths and the uppercased request method against binding
// methods, with MethodAny matching everything. Unmatched requests produce
// the fallback payload rather than an error.
//
// Handler errors pass through untouched, and Dispatch never recovers panics;
// both belong to whatever error boundary drives the dispatch. ServeHTTP is
// that boundary for net/http hosts.
func (m *mux[C]) Dispatch(ctx C) (*handler.Payload, error) {
	if m.hook != nil {
		m.hook(ctx)
	}

	r := ctx.Request()

	// Use RawPath if available to preserve URL encoding
	path := r.URL.Path
	if r.URL.RawPath != "" {
		path = r.URL.RawPath
	}
	if path == "" {
		path = "/"
	}

	method := Method(strings.ToUpper(r.Method))

	h, ok := m.table.resolve(method, path)
	if !ok {
		return notFound(r.Method, path), nil
	}

	p, err := h(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNilPayload, method, path)
	}
	return p, nil
}

// notFound synthesizes the fallback payload for an unmatched request. The
// body names the request method in lowercase: "Cannot get /missing".
func notFound(method, path string) *handler.Payload {
	return &handler.Payload{
		Status: http.StatusNotFound,
		Header: http.Header{"Content-Type": []string{"text/html; charset=utf-8"}},
		Body:   []byte("Cannot " + strings.ToLower(method) + " " + path),
	}
}

// ServeHTTP implements http.Handler interface.
//
// It adapts Dispatch to net/http: builds the context, recovers panics from
// hooks and handlers, renders the returned payload, and routes every failure
// through the configured error handler. Exactly one response is written per
// request.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := newResponseWriter(w)
	ctx := m.newContext(ww, r)

	// Recover from panics to prevent server crashes
	defer func() {
		if p := recover(); p != nil {
			// Wrap panic in error with stack trace
			panicErr := &panicError{
				value: p,
				stack: debug.Stack(),
			}

			// Check if response has already been written
			if ww.Written() {
				// Can't send error response, just log the panic
				m.logger.Error("panic after response written",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
			} else {
				// Response not written, can use error handler
				m.errorHandler(ctx, panicErr)
			}
		}
	}()

	p, err := m.Dispatch(ctx)
	if err != nil {
		m.errorHandler(ctx, err)
		return
	}

	if err := p.Render(ww); err != nil {
		m.errorHandler(ctx, err)
	}
}

// Get registers a handler for GET requests.
// It panics on registration failure; use Register to handle the error.
func (m *mux[C]) Get(path string, handler handler.HandlerFunc[C]) {
	m.mustRegister(MethodGet, path, handler)
}

// Post registers a handler for POST requests.
// It panics on registration failure; use Register to handle the error.
func (m *mux[C]) Post(path string, handler handler.HandlerFunc[C]) {
	m.mustRegister(MethodPost, path, handler)
}

// Put registers a handler for PUT requests.
// It panics on registration failure; use Register to handle the error.
func (m *mux[C]) Put(path string, handler handler.HandlerFunc[C]) {
	m.mustRegister(MethodPut, path, handler)
}

// Delete registers a handler for DELETE requests.
// It panics on registration failure; use Register to handle the error.
func (m *mux[C]) Delete(path string, handler handler.HandlerFunc[C]) {
	m.mustRegister(MethodDelete, path, handler)
}

// Options registers a handler for OPTIONS requests.
// It panics on registration failure; use Register to handle the error.
func (m *mux[C]) Options(path string, handler handler.HandlerFunc[C]) {
	m.mustRegister(MethodOptions, path, handler)
}

// Any registers a handler that matches every request method on the path.
// An Any binding conflicts with every other binding on the same path.
// It panics on registration failure; use Register to handle the error.
func (m *mux[C]) Any(path string, handler handler.HandlerFunc[C]) {
	m.mustRegister(MethodAny, path, handler)
}

// Register adds a binding to the route table. It validates the method
// against the closed enum and the path shape, then delegates the conflict
// check to the table. A failed registration leaves the table exactly as it
// was.
func (m *mux[C]) Register(method Method, path string, h handler.HandlerFunc[C]) error {
	if !method.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMethod, string(method))
	}
	if len(path) == 0 || path[0] != '/' {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	if h == nil {
		return fmt.Errorf("%w: %s %s", ErrNilHandler, method, path)
	}
	return m.table.insert(method, path, h)
}

func (m *mux[C]) mustRegister(method Method, path string, h handler.HandlerFunc[C]) {
	if err := m.Register(method, path, h); err != nil {
		panic(err)
	}
}

// Use installs the pre-dispatch hook. Each call replaces the previous hook
// wholesale; passing nil clears it. Compose several funcs with hooks.Join
// before installing when more than one is needed.
func (m *mux[C]) Use(hook handler.Hook[C]) {
	m.hook = hook
}

// Routes returns all registered routes in registration order.
func (m *mux[C]) Routes() []Route {
	return m.table.routes()
}
