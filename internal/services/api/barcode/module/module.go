// Package module wires barcode lookups into the API using modkit
package module

import (
	modkit "foodproxy/internal/modkit"
	"foodproxy/internal/modkit/httpkit"
	str "foodproxy/internal/platform/strings"

	"foodproxy/internal/services/api/barcode/domain"
	barcodehttp "foodproxy/internal/services/api/barcode/http"
	barcodesvc "foodproxy/internal/services/api/barcode/service"
	metadomain "foodproxy/internal/services/api/meta/domain"
)

// Ports is what the barcode module exposes to other modules
type Ports struct {
	Service domain.ServicePort
	Checker metadomain.Checker
}

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	svc   *barcodesvc.Svc
}

// New constructs a barcode module over deps.OFF
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("barcode"),
		modkit.WithPrefix("/api/barcode"),
	}, opts...)...)

	var src domain.ProductSource
	if deps.OFF != nil {
		src = deps.OFF
	}
	if p, ok := b.Ports.(domain.ProductSource); ok {
		src = p
	}
	return &Module{built: b, svc: barcodesvc.New(src, deps.Metrics)}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { barcodehttp.Register(rr, m.svc) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return Ports{Service: m.svc, Checker: m.svc} }
