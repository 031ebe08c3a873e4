package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	perr "foodproxy/internal/platform/errors"
	"foodproxy/internal/platform/logger"
	"foodproxy/internal/platform/metrics"
	phttp "foodproxy/internal/platform/net/http"

	"github.com/go-chi/httprate"
)

// RateLimitMessage is the client facing 429 message
const RateLimitMessage = "Too many requests, please try again later."

// RateLimitOptions configures RateLimit
type RateLimitOptions struct {
	Limit   int           // requests per window per client
	Window  time.Duration // window length
	Metrics *metrics.Registry
}

// RateLimit allows Limit requests per client IP per fixed window and answers 429 beyond that
// windows are aligned to multiples of Window since the epoch and reset completely
func RateLimit(o RateLimitOptions) func(http.Handler) http.Handler {
	return httprate.Limit(o.Limit, o.Window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitCounter(NewFixedWindowCounter()),
		httprate.WithResponseHeaders(httprate.ResponseHeaders{
			Limit:      "RateLimit-Limit",
			Remaining:  "RateLimit-Remaining",
			Reset:      "RateLimit-Reset",
			RetryAfter: "Retry-After",
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			o.Metrics.Limited()
			logger.C(r.Context()).Warn().Str("client", clientKey(r)).Msg("rate limited")
			phttp.RespondError(w, r, perr.TooManyRequestsf(RateLimitMessage))
		}),
		httprate.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			phttp.RespondError(w, r, perr.Wrap(err, perr.ErrorCodeUnknown, http.StatusText(http.StatusInternalServerError)))
		}),
	)
}

// FixedWindowCounter is an in memory httprate.LimitCounter that never carries counts
// across windows, which turns httprate's sliding estimate into a plain fixed window
type FixedWindowCounter struct {
	mu     sync.Mutex
	window time.Time
	counts map[string]int
}

var _ httprate.LimitCounter = (*FixedWindowCounter)(nil)

// NewFixedWindowCounter returns an empty counter
func NewFixedWindowCounter() *FixedWindowCounter {
	return &FixedWindowCounter{counts: make(map[string]int)}
}

// Config is part of httprate.LimitCounter; the counter needs no settings
func (c *FixedWindowCounter) Config(int, time.Duration) {}

// Increment adds one hit for key in currentWindow
func (c *FixedWindowCounter) Increment(key string, currentWindow time.Time) error {
	return c.IncrementBy(key, currentWindow, 1)
}

// IncrementBy adds amount hits for key in currentWindow, dropping older windows
func (c *FixedWindowCounter) IncrementBy(key string, currentWindow time.Time, amount int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roll(currentWindow)
	c.counts[key] += amount
	return nil
}

// Get returns the hits for key in currentWindow; the previous window always reads 0
func (c *FixedWindowCounter) Get(key string, currentWindow, _ time.Time) (int, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.window.Equal(currentWindow) {
		return 0, 0, nil
	}
	return c.counts[key], 0, nil
}

func (c *FixedWindowCounter) roll(currentWindow time.Time) {
	if c.window.Equal(currentWindow) {
		return
	}
	c.window = currentWindow
	clear(c.counts)
}

// clientKey is the limiter key for r
func clientKey(r *http.Request) string {
	k, _ := httprate.KeyByRealIP(r)
	return strings.TrimSpace(k)
}
