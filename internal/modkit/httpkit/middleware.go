package httpkit

import (
	"net/http"
	"time"

	"foodproxy/internal/platform/config"
	"foodproxy/internal/platform/metrics"
	"foodproxy/internal/platform/net/middleware"
)

// StackOptions configures CommonStack
type StackOptions struct {
	AllowedOrigins []string
	RateLimit      int
	RateWindow     time.Duration
	SlowRequest    time.Duration
	Metrics        *metrics.Registry
}

// StackFromConfig reads ALLOWED_ORIGINS and PROXY_RATE_*
func StackFromConfig(cfg config.Conf, reg *metrics.Registry) StackOptions {
	return StackOptions{
		AllowedOrigins: cfg.MayCSV("ALLOWED_ORIGINS", nil),
		RateLimit:      cfg.MayPositiveInt("PROXY_RATE_LIMIT", 60),
		RateWindow:     cfg.MayDuration("PROXY_RATE_WINDOW", time.Minute),
		SlowRequest:    cfg.MayDuration("PROXY_SLOW_REQUEST", 2*time.Second),
		Metrics:        reg,
	}
}

// CommonStack returns the global middleware chain in the order it must run
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.RateLimit <= 0 {
		o.RateLimit = 60
	}
	if o.RateWindow <= 0 {
		o.RateWindow = time.Minute
	}
	return []func(http.Handler) http.Handler{
		middleware.RealIP(),
		middleware.RequestID(),
		middleware.RecoverJSON,
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest, Metrics: o.Metrics}),
		middleware.Secure(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.AllowedOrigins}),
		middleware.RateLimit(middleware.RateLimitOptions{
			Limit:   o.RateLimit,
			Window:  o.RateWindow,
			Metrics: o.Metrics,
		}),
	}
}
