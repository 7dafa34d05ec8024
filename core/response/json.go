package response

import (
	"encoding/json"
	"net/http"

	"github.com/junctionio/junction/core/handler"
)

// JSON creates an application/json payload with 200 OK status.
// Marshaling happens at construction, so the error surfaces through the
// handler's error return rather than mid-response.
func JSON(v any) (*handler.Payload, error) {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json payload with custom status code.
// A zero status resolves to 204 No Content for nil data and 200 OK otherwise;
// 204 and 304 payloads carry no body per HTTP spec.
func JSONWithStatus(v any, status int) (*handler.Payload, error) {
	if status == 0 {
		if v == nil {
			status = http.StatusNoContent
		} else {
			status = http.StatusOK
		}
	}

	p := &handler.Payload{
		Status: status,
		Header: http.Header{"Content-Type": []string{"application/json; charset=utf-8"}},
	}

	switch status {
	case http.StatusNoContent, http.StatusNotModified:
		return p, nil
	}

	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	p.Body = body
	return p, nil
}
