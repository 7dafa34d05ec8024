// Package router provides a deliberately small HTTP router built around an
// insertion-ordered route table: exact path matching, a closed method set,
// duplicate rejection at registration time, and a single pre-dispatch hook.
// It trades pattern matching for predictability; every lookup is a
// first-match scan over the table in registration order.
//
// # Features
//
//   - Insertion-ordered route table with first-match resolution
//   - Exact, case-sensitive path matching (no patterns, parameters, or
//     trailing-slash folding)
//   - Closed method set: GET, POST, PUT, DELETE, OPTIONS, plus ANY as a
//     method wildcard
//   - Conflicting bindings rejected at registration, not at request time
//   - Single pre-dispatch hook that runs before every resolution
//   - Type-safe handlers over a generic context
//   - Host-agnostic Dispatch plus a standard http.Handler adapter
//
// # Basic Usage
//
// Create a router and define routes with handlers:
//
//	import (
//		"github.com/junctionio/junction/core/response"
//		"github.com/junctionio/junction/core/router"
//	)
//
//	r := router.New[*router.Context]()
//
//	r.Get("/health", func(ctx *router.Context) (*handler.Payload, error) {
//		return response.String("ok"), nil
//	})
//	r.Post("/users", createUserHandler)
//	r.Any("/echo", echoHandler)
//
//	http.ListenAndServe(":8080", r)
//
// # Matching Rules
//
// A request matches a binding when the request path is byte-for-byte equal
// to the binding path and the uppercased request method equals the binding
// method, or the binding method is ANY. "/users" and "/users/" are distinct
// routes. Bindings registered earlier win over later ones, which only
// matters for ANY versus concrete methods across different paths since
// conflicting bindings on one path cannot coexist.
//
// Unmatched requests receive a fixed 404 response with a text/html body of
// the form "Cannot get /missing".
//
// # Duplicate Bindings
//
// Registering a path and method combination that collides with an existing
// binding fails: same method on the same path, or ANY on either side of the
// comparison. The method helpers (Get, Post, ...) panic in that case, which
// suits the static route declarations they are meant for; Register returns
// the *DuplicateBindingError instead:
//
//	if err := r.Register(router.MethodGet, "/dup", h); err != nil {
//		var dup *router.DuplicateBindingError
//		if errors.As(err, &dup) {
//			log.Printf("already bound as %s", dup.Existing)
//		}
//	}
//
// A failed registration never mutates the table.
//
// # Hook
//
// The router carries at most one hook. It runs synchronously before every
// resolution, matched or not, and cannot short-circuit dispatch. Use
// replaces the hook wholesale; the hooks package provides ready-made hooks
// and a Join combinator for running several in sequence:
//
//	r.Use(hooks.Join(
//		hooks.RequestID[*router.Context](),
//		hooks.Logging[*router.Context](logger),
//	))
//
// # Error Handling
//
// Handlers return (*handler.Payload, error). Dispatch passes handler errors
// through untouched; ServeHTTP forwards them, along with recovered panics,
// to the configured error handler:
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(func(ctx *router.Context, err error) {
//			var pe router.PanicError
//			if errors.As(err, &pe) {
//				slog.Error("panic", "value", pe.Value())
//			}
//			http.Error(ctx.ResponseWriter(), "internal error", http.StatusInternalServerError)
//		}),
//	)
//
// # Registration Lifecycle
//
// Register all routes before the router starts serving. The table is
// immutable during serving and is read without locks; registering while
// requests are in flight is undefined behavior.
package router
