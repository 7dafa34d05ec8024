package hooks

import (
	"github.com/google/uuid"

	"github.com/junctionio/junction/core/handler"
)

// requestIDContextKey is used as a key for storing request ID in request context.
type requestIDContextKey struct{}

// RequestIDConfig configures the request ID hook.
type RequestIDConfig struct {
	// Skip defines a function to skip the hook for specific requests
	Skip func(ctx handler.Context) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting determines whether to reuse a request ID supplied by the client
	UseExisting bool
}

// RequestID creates a request ID hook with default configuration.
// It generates a new UUID for each request and places it in both the
// request context and the response headers before routing happens.
func RequestID[C handler.Context]() handler.Hook[C] {
	return RequestIDWithConfig[C](RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID hook with custom configuration.
func RequestIDWithConfig[C handler.Context](cfg RequestIDConfig) handler.Hook[C] {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}

	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(ctx C) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return
		}

		var requestID string
		if cfg.UseExisting {
			if existingID := ctx.Request().Header.Get(cfg.HeaderName); existingID != "" {
				requestID = existingID
			}
		}
		if requestID == "" {
			requestID = cfg.Generator()
		}

		ctx.SetValue(requestIDContextKey{}, requestID)
		// Headers may be set freely here: the hook runs before any handler
		// or fallback writes to the response.
		ctx.ResponseWriter().Header().Set(cfg.HeaderName, requestID)
	}
}

// GetRequestID retrieves the request ID from the request context.
// Returns the request ID and a boolean indicating whether it was found.
func GetRequestID(ctx handler.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}
