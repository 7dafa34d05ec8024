package handler

// HandlerFunc is a type-safe request handler with custom context support.
// It returns the payload to render, or an error for the caller's error
// boundary. The router never converts handler errors into responses itself.
type HandlerFunc[C Context] func(ctx C) (*Payload, error)

// Hook runs synchronously before a request is routed. It observes and may
// annotate the context; it cannot short-circuit dispatch.
type Hook[C Context] func(ctx C)

// ErrorHandler handles errors during request processing.
type ErrorHandler[C Context] func(ctx C, err error)
