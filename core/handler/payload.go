package handler

import "net/http"

// Payload is the materialized outcome of handling a request: a status code,
// response headers, and a fully buffered body. The router renders exactly one
// payload per dispatched request.
type Payload struct {
	Status int
	Header http.Header
	Body   []byte
}

// Render writes the payload to w. A zero Status renders as 200 OK. Headers
// are copied before the status line is committed because they are ignored
// afterwards.
func (p *Payload) Render(w http.ResponseWriter) error {
	for key, values := range p.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}

	status := p.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if len(p.Body) == 0 {
		return nil
	}
	_, err := w.Write(p.Body)
	return err
}

// WithStatus returns a copy of the payload with the given status code.
// The original payload is left untouched so constructed payloads can be
// shared and decorated per request.
func (p *Payload) WithStatus(status int) *Payload {
	q := *p
	q.Status = status
	return &q
}

// WithHeader returns a copy of the payload with the header set.
// The header map is cloned; the original payload is left untouched.
func (p *Payload) WithHeader(key, value string) *Payload {
	q := *p
	q.Header = p.Header.Clone()
	if q.Header == nil {
		q.Header = http.Header{}
	}
	q.Header.Set(key, value)
	return &q
}
