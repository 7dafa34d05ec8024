package logger

import (
	"io"
	stdlog "log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Format selects the output encoding of a logger.
type Format string

const (
	// FormatText emits logfmt-style key=value lines.
	FormatText Format = "text"
	// FormatJSON emits one JSON object per record with an RFC3339 "ts" key.
	FormatJSON Format = "json"
	// FormatDev emits colorized human-oriented lines for local development.
	FormatDev Format = "dev"
)

type options struct {
	level     slog.Level
	format    Format
	output    io.Writer
	addSource bool
	attrs     []slog.Attr
}

// Option configures the logger produced by New.
type Option func(*options)

// WithLevel sets the minimum level that will be logged.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithFormat sets the output encoding.
func WithFormat(format Format) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithJSONFormatter selects JSON output.
func WithJSONFormatter() Option {
	return WithFormat(FormatJSON)
}

// WithTextFormatter selects logfmt-style text output.
func WithTextFormatter() Option {
	return WithFormat(FormatText)
}

// WithOutput redirects log output, primarily for capturing logs in tests.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithSource includes source file and line in each record.
func WithSource() Option {
	return func(o *options) {
		o.addSource = true
	}
}

// WithAttr attaches attributes to every record the logger emits.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithDevelopment configures a colorized debug-level logger with source
// locations, tagged with the application name. Suited to local runs.
func WithDevelopment(app string) Option {
	return func(o *options) {
		o.format = FormatDev
		o.level = slog.LevelDebug
		o.addSource = true
		if app != "" {
			o.attrs = append(o.attrs, slog.String("app", app))
		}
	}
}

// WithProduction configures an info-level JSON logger tagged with the
// application name.
func WithProduction(app string) Option {
	return func(o *options) {
		o.format = FormatJSON
		o.level = slog.LevelInfo
		if app != "" {
			o.attrs = append(o.attrs, slog.String("app", app))
		}
	}
}

// New creates a logger writing to stdout with text format at info level
// unless options say otherwise.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: FormatText,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	var h slog.Handler
	switch o.format {
	case FormatJSON:
		h = slog.NewJSONHandler(o.output, &slog.HandlerOptions{
			Level:     o.level,
			AddSource: o.addSource,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) == 0 && a.Key == slog.TimeKey {
					return slog.String("ts", a.Value.Time().UTC().Format(time.RFC3339Nano))
				}
				return a
			},
		})
	case FormatDev:
		h = tint.NewHandler(o.output, &tint.Options{
			Level:      o.level,
			AddSource:  o.addSource,
			TimeFormat: "15:04:05.000",
		})
	default:
		h = slog.NewTextHandler(o.output, &slog.HandlerOptions{
			Level:     o.level,
			AddSource: o.addSource,
		})
	}

	log := slog.New(h)
	if len(o.attrs) > 0 {
		args := make([]any, len(o.attrs))
		for i, a := range o.attrs {
			args[i] = a
		}
		log = log.With(args...)
	}
	return log
}

// NewFromConfig creates a logger from configuration. Additional options can
// override config values.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := []Option{
		WithLevel(parseLevel(cfg.Level)),
		WithFormat(Format(strings.ToLower(strings.TrimSpace(cfg.Format)))),
	}
	if cfg.AddSource {
		configOpts = append(configOpts, WithSource())
	}
	configOpts = append(configOpts, opts...)
	return New(configOpts...)
}

// SetAsDefault installs log as both the slog default and the destination of
// the standard library log package.
func SetAsDefault(log *slog.Logger) {
	slog.SetDefault(log)
	stdlog.SetFlags(0)
	stdlog.SetOutput(slog.NewLogLogger(log.Handler(), slog.LevelInfo).Writer())
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
