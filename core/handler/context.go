package handler

import (
	"context"
	"net/http"
)

// Context defines the contract for request contexts in the framework.
// The router provides a default implementation; applications define their
// own to carry typed request-scoped state.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	SetValue(key, val any)
}
