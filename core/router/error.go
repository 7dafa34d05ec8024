package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/junctionio/junction/core/handler"
)

var (
	// Registration errors
	ErrDuplicateBinding = errors.New("duplicate route binding")
	ErrInvalidMethod    = errors.New("invalid http method")
	ErrInvalidPath      = errors.New("invalid route path")
	ErrNilHandler       = errors.New("nil handler")

	// Dispatch errors
	ErrNilPayload       = errors.New("nil payload")
	ErrNoContextFactory = errors.New("no context factory provided")
)

// DuplicateBindingError reports a registration that conflicts with a binding
// already in the table: same path with the same method, or with MethodAny on
// either side. The failed registration leaves the table unchanged.
//
// It unwraps to ErrDuplicateBinding for errors.Is checks.
type DuplicateBindingError struct {
	Path     string
	Method   Method // the rejected method
	Existing Method // the method of the binding it collided with
}

// Error implements the error interface.
func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("duplicate route binding: %s %s conflicts with registered %s handler", e.Method, e.Path, e.Existing)
}

// Unwrap allows errors.Is to match ErrDuplicateBinding.
func (e *DuplicateBindingError) Unwrap() error {
	return ErrDuplicateBinding
}

// statusCode is an unexported interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler provides default error handling.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()

	// Prevent double-writing responses which causes HTTP protocol errors
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	// Check if error implements statusCode interface
	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}

	http.Error(w, err.Error(), status)
}

// PanicError interface allows external error handlers to detect and handle panics.
// When a panic is recovered by the router, it's wrapped in an error that implements
// this interface, providing access to the original panic value and stack trace.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

// panicError is the private implementation of PanicError interface.
type panicError struct {
	value any
	stack []byte
}

// Error implements the error interface.
func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Value returns the original panic value.
func (e *panicError) Value() any {
	return e.value
}

// Stack returns the stack trace.
func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
