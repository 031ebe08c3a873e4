// Package domain holds the meta contracts other modules implement
package domain

import "context"

// Checker is exposed by modules that depend on an upstream
// Ready returns the check name and a non nil error when the dependency is not usable
type Checker interface {
	Ready(ctx context.Context) (name string, err error)
}

// Check statuses
const (
	StatusOK   = "ok"
	StatusFail = "fail"
)

// Check is one readiness result
type Check struct {
	Name   string `json:"name"   example:"usda"`
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"USDA_FDC_API_KEY is not set"`
}

// Health is the liveness payload the mobile client polls
type Health struct {
	OK bool `json:"ok" example:"true"`
}

// Ready summarizes readiness
type Ready struct {
	Status string  `json:"status" example:"ok"` // ok degraded
	Checks []Check `json:"checks"`
	Now    string  `json:"now"    example:"2026-10-19T13:05:00Z"`
}
