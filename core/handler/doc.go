// Package handler provides the shared types for HTTP request processing:
// a type-safe context contract, handler functions that produce response
// payloads, and hook and error-handling abstractions used by the router.
//
// # Features
//
//   - Type-safe HTTP handlers using Go generics
//   - Custom context interface for request-specific data
//   - Buffered response payloads rendered exactly once per request
//   - Pre-dispatch hooks for cross-cutting concerns
//   - Error handling abstraction for consistent error processing
//
// # Core Types
//
// The package defines the types the rest of the framework is built on:
//
//	import "github.com/junctionio/junction/core/handler"
//
//	// Materialized response: status, headers, body
//	type Payload struct {
//		Status int
//		Header http.Header
//		Body   []byte
//	}
//
//	// Type-safe handler with custom context
//	type HandlerFunc[C Context] func(ctx C) (*Payload, error)
//
//	// Pre-dispatch hook
//	type Hook[C Context] func(ctx C)
//
//	// Error handling function
//	type ErrorHandler[C Context] func(ctx C, err error)
//
// # Context Interface
//
// The Context interface extends Go's standard context.Context with
// HTTP-specific methods:
//
//	type Context interface {
//		context.Context                      // Standard context methods
//		Request() *http.Request              // Access to HTTP request
//		ResponseWriter() http.ResponseWriter // Access to response writer
//		SetValue(key, val any)               // Store request-scoped values
//	}
//
// # Basic Handler Implementation
//
// Handlers compute a payload; they do not touch the wire directly:
//
//	func helloHandler(ctx handler.Context) (*handler.Payload, error) {
//		name := ctx.Request().URL.Query().Get("name")
//		if name == "" {
//			name = "World"
//		}
//		return &handler.Payload{
//			Status: http.StatusOK,
//			Header: http.Header{"Content-Type": []string{"text/plain"}},
//			Body:   []byte("Hello, " + name + "!"),
//		}, nil
//	}
//
// The core/response package provides constructors for the common payload
// shapes so handlers rarely build the struct by hand.
//
// # Custom Context Implementation
//
// Implement the Context interface for your specific application needs:
//
//	type AppContext struct {
//		context.Context
//		request  *http.Request
//		response http.ResponseWriter
//		values   map[any]any
//		userID   string // Application-specific field
//	}
//
//	func (c *AppContext) Request() *http.Request              { return c.request }
//	func (c *AppContext) ResponseWriter() http.ResponseWriter { return c.response }
//
//	func (c *AppContext) SetValue(key, val any) {
//		if c.values == nil {
//			c.values = make(map[any]any)
//		}
//		c.values[key] = val
//	}
//
//	func (c *AppContext) Value(key any) any {
//		if val, ok := c.values[key]; ok {
//			return val
//		}
//		return c.Context.Value(key)
//	}
//
// # Hooks
//
// A Hook runs synchronously before the router resolves a request. Hooks
// annotate the context or record observations; they cannot block dispatch
// or produce a response:
//
//	func tracingHook[C handler.Context](ctx C) {
//		ctx.SetValue(traceKey{}, newTraceID())
//	}
//
// The hooks package ships ready-made request-ID and logging hooks and a
// combinator for composing several hook functions into one.
//
// # Error Handling
//
// A handler that returns an error delegates the response to the error
// boundary of whatever is driving it. ErrorHandler is that boundary's
// signature:
//
//	func errorHandler(ctx *AppContext, err error) {
//		slog.Error("request failed", "error", err)
//		http.Error(ctx.ResponseWriter(), "internal error", http.StatusInternalServerError)
//	}
//
// # Testing Handlers
//
// Payload-returning handlers are plain functions and test without a server:
//
//	func TestHelloHandler(t *testing.T) {
//		req := httptest.NewRequest("GET", "/hello?name=Go", nil)
//		w := httptest.NewRecorder()
//		ctx := router.NewContext(w, req)
//
//		p, err := helloHandler(ctx)
//		require.NoError(t, err)
//		assert.Equal(t, http.StatusOK, p.Status)
//		assert.Equal(t, "Hello, Go!", string(p.Body))
//	}
package handler
