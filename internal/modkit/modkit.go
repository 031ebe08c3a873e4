// Package modkit builds API modules from shared deps and mounts them in order
package modkit

import (
	"foodproxy/internal/modkit/module"
	"foodproxy/internal/platform/logger"
	phttp "foodproxy/internal/platform/net/http"
)

// Module is the surface every API module implements
type Module = module.Module

// Builder constructs a Module from shared deps; foodsmod.New and barcodemod.New have this shape
type Builder func(Deps, ...Option) Module

// BuildAll runs each builder over the same deps
func BuildAll(deps Deps, builders ...Builder) []Module {
	out := make([]Module, 0, len(builders))
	for _, b := range builders {
		out = append(out, b(deps))
	}
	return out
}

// MountAll mounts mods in the order given
// route registration order matters to chi only for duplicate patterns, which panic
func MountAll(r phttp.Router, log *logger.Logger, mods ...Module) {
	for _, m := range mods {
		m.MountRoutes(r)
		log.Debug().
			Str("module", m.Name()).
			Str("prefix", module.PrefixOf(m)).
			Bool("ports", module.HasPorts(m)).
			Msg("module mounted")
	}
}
