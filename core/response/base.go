package response

import (
	"net/http"

	"github.com/junctionio/junction/core/handler"
)

// String creates a text/plain payload with 200 OK status.
func String(content string) *handler.Payload {
	return &handler.Payload{
		Status: http.StatusOK,
		Header: http.Header{"Content-Type": []string{"text/plain; charset=utf-8"}},
		Body:   []byte(content),
	}
}

// StringWithStatus creates a text/plain payload with custom status code.
func StringWithStatus(content string, status int) *handler.Payload {
	if status == 0 {
		status = http.StatusOK
	}
	return &handler.Payload{
		Status: status,
		Header: http.Header{"Content-Type": []string{"text/plain; charset=utf-8"}},
		Body:   []byte(content),
	}
}

// HTML creates a text/html payload with 200 OK status.
func HTML(content string) *handler.Payload {
	return &handler.Payload{
		Status: http.StatusOK,
		Header: http.Header{"Content-Type": []string{"text/html; charset=utf-8"}},
		Body:   []byte(content),
	}
}

// HTMLWithStatus creates a text/html payload with custom status code.
func HTMLWithStatus(content string, status int) *handler.Payload {
	if status == 0 {
		status = http.StatusOK
	}
	return &handler.Payload{
		Status: status,
		Header: http.Header{"Content-Type": []string{"text/html; charset=utf-8"}},
		Body:   []byte(content),
	}
}

// Bytes creates a payload with custom content type and 200 OK status.
func Bytes(content []byte, contentType string) *handler.Payload {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &handler.Payload{
		Status: http.StatusOK,
		Header: h,
		Body:   content,
	}
}

// BytesWithStatus creates a payload with custom content type and status code.
func BytesWithStatus(content []byte, contentType string, status int) *handler.Payload {
	if status == 0 {
		status = http.StatusOK
	}
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &handler.Payload{
		Status: status,
		Header: h,
		Body:   content,
	}
}

// NoContent creates a 204 No Content payload.
func NoContent() *handler.Payload {
	return &handler.Payload{
		Status: http.StatusNoContent,
		Header: http.Header{},
	}
}

// Status creates an empty payload with the specified status code.
func Status(code int) *handler.Payload {
	if code == 0 {
		code = http.StatusOK
	}
	return &handler.Payload{
		Status: code,
		Header: http.Header{},
	}
}
