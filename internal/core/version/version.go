// Package version reports what build of the proxy is running
package version

import "fmt"

// Service is the name /version and the startup log report
const Service = "foodproxy-api"

// BuildInfo is the /version payload
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// set with -ldflags, for example
//
//	-X foodproxy/internal/core/version.version=v0.1.0
//	-X foodproxy/internal/core/version.commit=$(git rev-parse --short HEAD)
//	-X foodproxy/internal/core/version.date=$(date -u +%FT%TZ)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build stamped into the binary
func Info() BuildInfo {
	return BuildInfo{Service: Service, Version: version, Commit: commit, Date: date}
}

// String renders "foodproxy-api v0.1.0 (abc123, 2026-10-19)"
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (%s, %s)", b.Service, b.Version, b.Commit, b.Date)
}
