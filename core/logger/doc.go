// Package logger provides structured logging built on Go's standard slog
// package: a factory with environment presets, env-tagged configuration, and
// attribute helpers for common logging scenarios.
//
// # Features
//
//   - Built on log/slog for compatibility and performance
//   - Text, JSON, and colorized development output formats
//   - Environment presets for development and production
//   - Env-tagged Config for twelve-factor deployments
//   - Attribute helpers with nil safety (zero Attrs are dropped)
//
// # Basic Usage
//
//	import "github.com/junctionio/junction/core/logger"
//
//	// Colorized debug logger for local runs
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// JSON info logger for deployments
//	log := logger.New(logger.WithProduction("myapp"))
//
//	log.Info("server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// # Configuration
//
// Config carries env tags, so it slots into config.Load:
//
//	type AppConfig struct {
//		Log logger.Config
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//	log := logger.NewFromConfig(cfg.Log)
//
// LOG_LEVEL=debug LOG_FORMAT=json LOG_ADD_SOURCE=true selects a debug-level
// JSON logger with source locations.
//
// # Attribute Helpers
//
// Helpers keep attribute keys consistent across the application:
//
//	log.Info("request completed",
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.StatusCode(status),
//		logger.Elapsed(start),
//		logger.RequestID(id),
//	)
//
//	log.Error("binding failed",
//		logger.Error(err),
//		logger.Route("GET", "/assets/app.css"),
//		logger.Component("static"),
//	)
//
// Error and RequestID return empty Attrs for nil or empty input, so they can
// be passed unconditionally.
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithOutput(&buf),
//	)
//
//	log.Info("test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
//
// # Global Logger Setup
//
// SetAsDefault installs a logger as the slog default and redirects the
// standard library log package through it:
//
//	log := logger.NewFromConfig(cfg.Log)
//	logger.SetAsDefault(log)
//
//	slog.Info("via slog default")
package logger
