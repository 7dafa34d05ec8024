package health

import (
	"context"
	"log/slog"

	"github.com/junctionio/junction/core/handler"
	"github.com/junctionio/junction/core/logger"
	"github.com/junctionio/junction/core/response"
)

// Readiness verifies all service dependencies are functioning.
// Returns "READY" when every check passes. A failing check surfaces as
// response.ErrServiceUnavailable through the handler's error return, so
// the host error boundary renders the 503.
//
// Example:
//
//	readinessHandler := health.Readiness[*myapp.Context](
//		logger,
//		checkUpstream,
//		checkDisk,
//	)
//	r.Get("/readyz", readinessHandler)
func Readiness[C handler.Context](log *slog.Logger, fn ...func(context.Context) error) handler.HandlerFunc[C] {
	return func(ctx C) (*handler.Payload, error) {
		for _, f := range fn {
			if err := f(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				return nil, response.ErrServiceUnavailable
			}
		}

		return response.String("READY"), nil
	}
}
