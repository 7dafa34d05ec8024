package router_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/junctionio/junction/core/handler"
	"github.com/junctionio/junction/core/response"
	"github.com/junctionio/junction/core/router"
)

// Simple handler for benchmarks
func benchHandler(ctx *router.Context) (*handler.Payload, error) {
	return response.String("OK"), nil
}

func BenchmarkServeHTTPStaticRoutes(b *testing.B) {
	r := router.New[*router.Context]()

	staticRoutes := []string{
		"/",
		"/health",
		"/api",
		"/api/users",
		"/api/posts",
		"/api/comments",
		"/admin",
		"/admin/dashboard",
		"/admin/users",
		"/admin/settings",
	}

	for _, route := range staticRoutes {
		r.Get(route, benchHandler)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	w := httptest.NewRecorder()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w.Body.Reset()
		r.ServeHTTP(w, req)
	}
}

func BenchmarkDispatchTableScan(b *testing.B) {
	// One hundred bindings; the match sits at the far end, so every dispatch
	// pays the full linear scan.
	r := router.New[*router.Context]()
	for i := 0; i < 100; i++ {
		r.Get(fmt.Sprintf("/route/%03d", i), benchHandler)
	}

	req := httptest.NewRequest(http.MethodGet, "/route/099", nil)
	ctx := router.NewContext(httptest.NewRecorder(), req)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := r.Dispatch(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDispatchNotFound(b *testing.B) {
	r := router.New[*router.Context]()
	for i := 0; i < 100; i++ {
		r.Get(fmt.Sprintf("/route/%03d", i), benchHandler)
	}

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	ctx := router.NewContext(httptest.NewRecorder(), req)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := r.Dispatch(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkServeHTTPWithHook(b *testing.B) {
	r := router.New[*router.Context]()
	r.Use(func(ctx *router.Context) {})
	r.Get("/hooked", benchHandler)

	req := httptest.NewRequest(http.MethodGet, "/hooked", nil)
	w := httptest.NewRecorder()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w.Body.Reset()
		r.ServeHTTP(w, req)
	}
}
