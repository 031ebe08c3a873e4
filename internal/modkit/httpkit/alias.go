// Package httpkit is the handler surface service modules write against
// handlers return (value, error) and never touch the ResponseWriter
package httpkit

import (
	"net/http"
	"strings"

	phttp "foodproxy/internal/platform/net/http"
)

type (
	// Response lets a handler pick a status other than 200
	Response = phttp.Response
	// Router is the platform router seam
	Router = phttp.Router
)

// Status returns a response with an explicit status, e.g. 503 from /ready
func Status(status int, data any) Response { return phttp.Status(status, data) }

// Param returns a path parameter with surrounding whitespace removed
// "/api/barcode/%20" yields "" so the required check catches it
func Param(r *http.Request, name string) string {
	return strings.TrimSpace(phttp.URLParam(r, name))
}

// Call adapts a (value, error) handler
// errors go through the error reply, a returned Response is written as is, anything else is 200 JSON
func Call(fn func(*http.Request) (any, error)) phttp.Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		switch {
		case err != nil:
			return phttp.Error(err)
		case isResponse(out):
			return out.(phttp.Response)
		default:
			return phttp.OK(out)
		}
	})
}

func isResponse(v any) bool {
	_, ok := v.(phttp.Response)
	return ok
}
