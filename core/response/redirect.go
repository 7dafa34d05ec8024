package response

import (
	"net/http"

	"github.com/junctionio/junction/core/handler"
)

// Redirect creates a 302 Found (temporary redirect) payload.
// This is the most common redirect type for temporary redirects.
func Redirect(url string) *handler.Payload {
	return redirect(url, http.StatusFound)
}

// RedirectPermanent creates a 301 Moved Permanently payload.
// Use this when a resource has permanently moved to a new location.
func RedirectPermanent(url string) *handler.Payload {
	return redirect(url, http.StatusMovedPermanently)
}

// RedirectSeeOther creates a 303 See Other payload.
// This is useful after a POST request to redirect to a GET request.
func RedirectSeeOther(url string) *handler.Payload {
	return redirect(url, http.StatusSeeOther)
}

func redirect(url string, status int) *handler.Payload {
	return &handler.Payload{
		Status: status,
		Header: http.Header{"Location": []string{url}},
	}
}
