package middleware

import (
	"net/http"
	"runtime/debug"

	perr "foodproxy/internal/platform/errors"
	"foodproxy/internal/platform/logger"
	phttp "foodproxy/internal/platform/net/http"
)

// RecoverJSON converts panics into a JSON 500 and logs the stack with the request id
// http.ErrAbortHandler is re-panicked so net/http can abort the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			err := perr.PanicErrf("%s", http.StatusText(http.StatusInternalServerError))
			phttp.JSON(w, perr.HTTPStatus(err), perr.WireFrom(err))
		}()
		next.ServeHTTP(w, r)
	})
}
