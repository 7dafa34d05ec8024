package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Proxy headers checked in priority order. CDN headers come first because
// they are set by infrastructure the request provably passed through.
var proxyHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP extracts the real client IP address from the request.
//
// It checks proxy headers in priority order, then falls back to RemoteAddr.
// Candidates are validated with net.ParseIP and returned in canonical form;
// the unspecified address (0.0.0.0, ::) is rejected. When nothing valid is
// found, the raw RemoteAddr is returned so callers always get a string.
func GetIP(r *http.Request) string {
	for _, header := range proxyHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}

		// X-Forwarded-For may hold a chain "client, proxy1, proxy2";
		// the leftmost entry is the original client.
		if i := strings.IndexByte(value, ','); i >= 0 {
			value = value[:i]
		}

		if ip := normalize(value); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := normalize(host); ip != "" {
		return ip
	}

	return r.RemoteAddr
}

// normalize validates a candidate address and returns its canonical string
// form, or "" when the candidate is not a usable client address.
func normalize(candidate string) string {
	ip := net.ParseIP(strings.TrimSpace(candidate))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
