// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"foodproxy/internal/core/version"
	"foodproxy/internal/modkit/httpkit"
	"foodproxy/internal/services/api/meta/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Checkers []domain.Checker
	Timeout  time.Duration
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Timeout <= 0 {
		d.Timeout = 2 * time.Second
	}
	h := &handlers{deps: d}

	httpkit.GetHead(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} domain.Health
// @Router /health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return domain.Health{OK: true}, nil
}

// @Summary Readiness probe over upstream configuration
// @Tags Meta
// @Produce json
// @Success 200 {object} domain.Ready
// @Failure 503 {object} domain.Ready
// @Router /ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.Timeout)
	defer cancel()

	out := domain.Ready{
		Status: domain.StatusOK,
		Checks: make([]domain.Check, 0, len(h.deps.Checkers)),
		Now:    time.Now().UTC().Format(time.RFC3339),
	}
	for _, c := range h.deps.Checkers {
		name, err := c.Ready(ctx)
		chk := domain.Check{Name: name, Status: domain.StatusOK}
		if err != nil {
			chk.Status = domain.StatusFail
			chk.Error = err.Error()
			out.Status = "degraded"
		}
		out.Checks = append(out.Checks, chk)
	}
	if out.Status != domain.StatusOK {
		return httpkit.Status(http.StatusServiceUnavailable, out), nil
	}
	return out, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}
