// Package module is the contract API modules satisfy plus helpers for reading their ports
// modkit aliases Module from here so service packages can depend on this package alone
package module

import (
	phttp "foodproxy/internal/platform/net/http"
)

// Module mounts its routes and exposes an optional port bundle
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// Prefixed is implemented by modules mounted below a path
type Prefixed interface {
	Prefix() string
}

// HasPorts reports whether m exposes a port set
func HasPorts(m Module) bool {
	return m != nil && m.Ports() != nil
}

// PrefixOf returns where m is mounted; modules without a prefix sit at "/"
func PrefixOf(m Module) string {
	if p, ok := m.(Prefixed); ok {
		return p.Prefix()
	}
	return "/"
}
