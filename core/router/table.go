package router

import (
	"github.com/junctionio/junction/core/handler"
)

// Method is an HTTP method a route can be bound to. The set is closed:
// registration accepts exactly the constants below, and MethodAny matches
// every inbound method during resolution.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodOptions Method = "OPTIONS"
	MethodAny     Method = "ANY"
)

var methodSet = map[Method]struct{}{
	MethodGet:     {},
	MethodPost:    {},
	MethodPut:     {},
	MethodDelete:  {},
	MethodOptions: {},
	MethodAny:     {},
}

func (m Method) valid() bool {
	_, ok := methodSet[m]
	return ok
}

// binding is a single (path, method, handler) entry. Immutable once inserted.
type binding[C handler.Context] struct {
	path    string
	method  Method
	handler handler.HandlerFunc[C]
}

// table holds bindings in insertion order. Resolution scans front to back, so
// the earliest matching binding always wins.
type table[C handler.Context] struct {
	bindings []binding[C]
}

// conflicts reports whether two bindings on the same path collide: equal
// methods always do, and MethodAny on either side collides with everything.
func conflicts(existing, incoming Method) bool {
	return existing == incoming || existing == MethodAny || incoming == MethodAny
}

// insert appends a binding unless it conflicts with an existing one. The
// whole table is scanned on every insert; tables are small and the full scan
// keeps the conflict rule in one obvious place. On conflict the table is left
// untouched.
func (t *table[C]) insert(method Method, path string, h handler.HandlerFunc[C]) error {
	for _, b := range t.bindings {
		if b.path == path && conflicts(b.method, method) {
			return &DuplicateBindingError{Path: path, Method: method, Existing: b.method}
		}
	}
	t.bindings = append(t.bindings, binding[C]{path: path, method: method, handler: h})
	return nil
}

// resolve returns the handler of the first binding whose path is exactly
// equal to path (case-sensitive, no normalization) and whose method equals
// method or is MethodAny.
func (t *table[C]) resolve(method Method, path string) (handler.HandlerFunc[C], bool) {
	for _, b := range t.bindings {
		if b.path == path && (b.method == method || b.method == MethodAny) {
			return b.handler, true
		}
	}
	return nil, false
}

// routes returns a snapshot of the table in insertion order.
func (t *table[C]) routes() []Route {
	routes := make([]Route, len(t.bindings))
	for i, b := range t.bindings {
		routes[i] = Route{Method: b.method, Path: b.path}
	}
	return routes
}
