package middleware

import (
	"net/http"
	"time"

	"foodproxy/internal/platform/logger"
	"foodproxy/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow marks requests taking >= Slow as warn level, 0 disables slow marking
	Slow time.Duration
	// Metrics counts finished requests by method and status when set
	Metrics *metrics.Registry
}

// captureWriter records status and bytes written
type captureWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (cw *captureWriter) WriteHeader(code int) {
	if !cw.wroteHeader {
		cw.status = code
		cw.wroteHeader = true
	}
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.wroteHeader = true
	n, err := cw.ResponseWriter.Write(b)
	cw.bytes += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer
func (cw *captureWriter) Unwrap() http.ResponseWriter { return cw.ResponseWriter }

// routeOf returns the matched chi pattern, e.g. /api/foods/{fdcId}, or "" when nothing matched
func routeOf(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		return rc.RoutePattern()
	}
	return ""
}

// AccessLog writes one line per request through the request scoped logger
// the query string is left out since search terms and keys travel there
func AccessLog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(cw, r)

			elapsed := time.Since(start)
			opt.Metrics.Request(r.Method, cw.status)

			log := logger.C(r.Context())
			evt := log.Info()
			if opt.Slow > 0 && elapsed >= opt.Slow {
				evt = log.Warn()
			}
			evt.Int("status", cw.status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", routeOf(r)).
				Str("remote", r.RemoteAddr).
				Int("bytes", cw.bytes).
				Msg("request done")
		})
	}
}
