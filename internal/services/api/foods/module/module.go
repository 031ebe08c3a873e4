// Package module wires foods into the API using modkit
package module

import (
	modkit "foodproxy/internal/modkit"
	"foodproxy/internal/modkit/httpkit"
	str "foodproxy/internal/platform/strings"

	"foodproxy/internal/services/api/foods/domain"
	foodshttp "foodproxy/internal/services/api/foods/http"
	foodssvc "foodproxy/internal/services/api/foods/service"
	metadomain "foodproxy/internal/services/api/meta/domain"
)

// Ports is what the foods module exposes to other modules
type Ports struct {
	Service domain.ServicePort
	Checker metadomain.Checker
}

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	svc   *foodssvc.Svc
}

// New constructs a foods module over deps.FDC
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("foods"),
		modkit.WithPrefix("/api/foods"),
	}, opts...)...)

	var src domain.FoodSource
	if deps.FDC != nil {
		src = deps.FDC
	}
	if p, ok := b.Ports.(domain.FoodSource); ok {
		src = p
	}
	return &Module{built: b, svc: foodssvc.New(src, deps.Metrics)}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { foodshttp.Register(rr, m.svc) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return Ports{Service: m.svc, Checker: m.svc} }
