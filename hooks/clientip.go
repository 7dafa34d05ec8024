package hooks

import (
	"github.com/junctionio/junction/core/handler"
	"github.com/junctionio/junction/pkg/clientip"
)

// clientIPContextKey is used as a key for storing client IP in request context.
type clientIPContextKey struct{}

// ClientIPConfig configures the client IP extraction hook.
type ClientIPConfig struct {
	// Skip defines a function to skip the hook for specific requests
	Skip func(ctx handler.Context) bool
	// StoreInContext determines whether to store the extracted IP in request context
	StoreInContext bool
	// HeaderName specifies the response header name for the client IP (default: "X-Client-IP")
	HeaderName string
	// StoreInHeader determines whether to include the IP in response headers
	StoreInHeader bool
}

// ClientIP creates a client IP extraction hook with default configuration.
// By default, it stores the extracted IP in the request context.
func ClientIP[C handler.Context]() handler.Hook[C] {
	return ClientIPWithConfig[C](ClientIPConfig{StoreInContext: true})
}

// ClientIPWithConfig creates a client IP extraction hook with custom
// configuration. It extracts the real client IP address from proxy headers
// (X-Forwarded-For, X-Real-IP, etc.) and stores it in the context, the
// response headers, or both.
func ClientIPWithConfig[C handler.Context](cfg ClientIPConfig) handler.Hook[C] {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Client-IP"
	}

	// Default to storing in context if no other action is configured
	if !cfg.StoreInContext && !cfg.StoreInHeader {
		cfg.StoreInContext = true
	}

	return func(ctx C) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return
		}

		ip := clientip.GetIP(ctx.Request())

		if cfg.StoreInContext {
			ctx.SetValue(clientIPContextKey{}, ip)
		}
		if cfg.StoreInHeader {
			ctx.ResponseWriter().Header().Set(cfg.HeaderName, ip)
		}
	}
}

// GetClientIP retrieves the client IP from the request context.
// Returns the IP and a boolean indicating whether the ClientIP hook stored one.
func GetClientIP(ctx handler.Context) (string, bool) {
	ip, ok := ctx.Value(clientIPContextKey{}).(string)
	return ip, ok
}
