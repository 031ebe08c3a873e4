// Package module wires meta endpoints into the API using a tiny module
package module

import (
	modkit "foodproxy/internal/modkit"
	"foodproxy/internal/modkit/httpkit"
	"foodproxy/internal/modkit/module"
	str "foodproxy/internal/platform/strings"

	"foodproxy/internal/services/api/meta/domain"
	metahttp "foodproxy/internal/services/api/meta/http"
)

// Ports lists the modules whose Checker ports feed /ready
type Ports struct {
	Watch []module.Module
}

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	watch []module.Module
}

// New constructs a meta module mounted at the root
// pass modkit.WithPorts(Ports{...}) to include other modules in the readiness probe
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta")}, opts...)...)
	m := &Module{built: b}
	if p, ok := b.Ports.(Ports); ok {
		m.watch = p.Watch
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			Checkers: module.Collect[domain.Checker](m.watch...),
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
