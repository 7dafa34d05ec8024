package hooks

import (
	"log/slog"

	"github.com/junctionio/junction/core/handler"
	"github.com/junctionio/junction/core/logger"
)

// LoggingConfig configures the request logging hook.
type LoggingConfig struct {
	// Skip defines a function to skip the hook for specific requests
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// Level for request logging (default: slog.LevelInfo)
	Level slog.Level

	// Component name for structured logging (default: "http")
	Component string
}

// Logging creates a request logging hook writing to the given logger.
// It emits one line per incoming request before routing, so unmatched
// requests are logged too.
func Logging[C handler.Context](log *slog.Logger) handler.Hook[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request logging hook with custom configuration.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Hook[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(ctx C) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return
		}

		req := ctx.Request()

		attrs := []slog.Attr{
			logger.Component(cfg.Component),
			logger.Event("request"),
			logger.Method(req.Method),
			logger.Path(req.URL.Path),
		}

		if id, ok := GetRequestID(ctx); ok {
			attrs = append(attrs, logger.RequestID(id))
		}
		if ip, ok := GetClientIP(ctx); ok {
			attrs = append(attrs, slog.String("client_ip", ip))
		}
		if req.URL.RawQuery != "" {
			attrs = append(attrs, slog.String("query", req.URL.RawQuery))
		}
		if req.RemoteAddr != "" {
			attrs = append(attrs, slog.String("remote_addr", req.RemoteAddr))
		}

		cfg.Logger.LogAttrs(req.Context(), cfg.Level, "request received", attrs...)
	}
}
