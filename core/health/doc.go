// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//   - NoContent: Returns 204 for minimal overhead
//
// Usage:
//
//	// Setup health routes
//	r.Get("/healthz", health.Liveness[*AppContext])
//	r.Get("/readyz", health.Readiness[*AppContext](
//		logger,
//		checkUpstream,
//		checkDisk,
//	))
//	r.Get("/ping", health.NoContent[*AppContext])
//
// Dependency checks must follow func(context.Context) error signature:
//
//	func checkUpstream(ctx context.Context) error {
//		return upstream.Ping(ctx)
//	}
package health
