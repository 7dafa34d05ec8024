package hooks_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/junctionio/junction/core/handler"
	"github.com/junctionio/junction/core/response"
	"github.com/junctionio/junction/core/router"
	"github.com/junctionio/junction/hooks"
)

func TestLoggingRecordsRequests(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	r := router.New[*router.Context]()
	r.Use(hooks.Logging[*router.Context](log))

	r.Get("/users", func(ctx *router.Context) (*handler.Payload, error) {
		return response.String("ok"), nil
	})

	req := httptest.NewRequest(http.MethodGet, "/users?page=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := buf.String()
	assert.Contains(t, out, "request received")
	assert.Contains(t, out, "component=http")
	assert.Contains(t, out, "event=request")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/users")
	assert.Contains(t, out, "query=page=2")

	// Without the ClientIP hook in front there is no client_ip attribute.
	assert.NotContains(t, out, "client_ip=")
}

func TestLoggingRecordsUnmatchedRequests(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	r := router.New[*router.Context]()
	r.Use(hooks.Logging[*router.Context](log))

	req := httptest.NewRequest(http.MethodPost, "/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, buf.String(), "method=POST")
	assert.Contains(t, buf.String(), "path=/missing")
}

func TestLoggingIncludesRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	r := router.New[*router.Context]()
	r.Use(hooks.Join(
		hooks.RequestIDWithConfig[*router.Context](hooks.RequestIDConfig{
			Generator: func() string { return "fixed-id" },
		}),
		hooks.Logging[*router.Context](log),
	))

	r.Get("/test", func(ctx *router.Context) (*handler.Payload, error) {
		return response.String("ok"), nil
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Contains(t, buf.String(), "request_id=fixed-id")
}

func TestLoggingSkip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	r := router.New[*router.Context]()
	r.Use(hooks.LoggingWithConfig[*router.Context](hooks.LoggingConfig{
		Logger: log,
		Skip: func(ctx handler.Context) bool {
			return ctx.Request().URL.Path == "/health"
		},
	}))

	r.Get("/health", func(ctx *router.Context) (*handler.Payload, error) {
		return response.String("ok"), nil
	})
	r.Get("/api", func(ctx *router.Context) (*handler.Payload, error) {
		return response.String("ok"), nil
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Empty(t, buf.String())

	req = httptest.NewRequest(http.MethodGet, "/api", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Contains(t, buf.String(), "path=/api")
}

func TestLoggingCustomComponentAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := router.New[*router.Context]()
	r.Use(hooks.LoggingWithConfig[*router.Context](hooks.LoggingConfig{
		Logger:    log,
		Level:     slog.LevelDebug,
		Component: "edge",
	}))

	r.Get("/test", func(ctx *router.Context) (*handler.Payload, error) {
		return response.String("ok"), nil
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "component=edge")
}
