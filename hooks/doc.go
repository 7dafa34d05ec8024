// Package hooks provides ready-made pre-dispatch hooks for the router.
//
// The router carries a single hook that runs synchronously before every
// resolution, for matched and unmatched paths alike. Hooks cannot
// short-circuit dispatch or observe the response; they annotate the request
// context and response headers before routing happens. Use replaces the
// active hook wholesale, so several hooks are combined with Join:
//
//	r := router.New[*router.Context]()
//	r.Use(hooks.Join(
//		hooks.RequestID[*router.Context](),
//		hooks.ClientIP[*router.Context](),
//		hooks.Logging[*router.Context](log),
//	))
//
// # Request IDs
//
// RequestID assigns each request an identifier, stores it in the context,
// and mirrors it in the X-Request-ID response header:
//
//	r.Use(hooks.RequestID[*router.Context]())
//
//	func show(ctx *router.Context) (*handler.Payload, error) {
//		id, _ := hooks.GetRequestID(ctx)
//		return response.String("handled " + id), nil
//	}
//
// Trusting an upstream proxy's IDs is opt-in:
//
//	r.Use(hooks.RequestIDWithConfig[*router.Context](hooks.RequestIDConfig{
//		UseExisting: true,
//	}))
//
// # Client IPs
//
// ClientIP resolves the real client address through proxy headers and stores
// it in the context, where the Logging hook picks it up:
//
//	r.Use(hooks.ClientIP[*router.Context]())
//
//	func show(ctx *router.Context) (*handler.Payload, error) {
//		ip, _ := hooks.GetClientIP(ctx)
//		return response.String("hello " + ip), nil
//	}
//
// # Request Logging
//
// Logging emits one structured line per incoming request. Because hooks run
// before routing, the line records arrival, not completion; response status
// logging belongs to the host layer:
//
//	r.Use(hooks.LoggingWithConfig[*router.Context](hooks.LoggingConfig{
//		Logger: log,
//		Skip: func(ctx handler.Context) bool {
//			return ctx.Request().URL.Path == "/health"
//		},
//	}))
package hooks
