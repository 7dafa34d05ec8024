// Package response provides constructors for the buffered payloads handlers
// return: plain text, HTML, JSON, raw bytes, redirects, and empty status
// responses, plus a structured HTTPError type for error returns.
//
// # Basic Usage
//
// Constructors return *handler.Payload so handlers read declaratively:
//
//	import "github.com/junctionio/junction/core/response"
//
//	func healthHandler(ctx *router.Context) (*handler.Payload, error) {
//		return response.String("ok"), nil
//	}
//
//	func getUserHandler(ctx *router.Context) (*handler.Payload, error) {
//		user, err := userStore.Find(ctx, id)
//		if err != nil {
//			return nil, response.ErrNotFound.WithError(err)
//		}
//		return response.JSON(user)
//	}
//
// JSON marshals at construction time and returns the marshal error alongside
// the payload, which lines up with the (payload, error) handler signature.
//
// # Decorating Payloads
//
// Payloads carry value-copy decorators for status and headers:
//
//	return response.HTML(page).
//		WithStatus(http.StatusCreated).
//		WithHeader("X-Resource-Id", id), nil
//
// # Redirects
//
//	response.Redirect("/login")          // 302 Found
//	response.RedirectPermanent("/new")   // 301 Moved Permanently
//	response.RedirectSeeOther("/done")   // 303 See Other (POST-redirect-GET)
//
// # Error Responses
//
// HTTPError implements both error and the router's status-code contract, so
// returning one from a handler produces a response with the right status:
//
//	return nil, response.ErrUnprocessableEntity.
//		WithMessage("email is malformed").
//		WithDetails(map[string]any{"field": "email"})
//
// The predefined errors (ErrBadRequest, ErrNotFound, ...) cover the common
// cases; NewHTTPError builds a 500 with a custom message.
package response
