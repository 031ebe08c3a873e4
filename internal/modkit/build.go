package modkit

import (
	"net/http"

	"foodproxy/internal/modkit/httpkit"
)

// Built is the resolved module configuration
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies opts in order; later options win and hooks are never nil
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	if b.Subrouter == nil {
		b.Subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if b.Register == nil {
		b.Register = func(httpkit.Router) {}
	}
	b.Mw = append([]func(http.Handler) http.Handler(nil), b.Mw...)
	return b
}

// Mount is the shared MountRoutes body: the prefix (or the root when empty), per module
// middleware, the subrouter hook, then register
func (b Built) Mount(r httpkit.Router, register func(httpkit.Router)) {
	mount := func(rr httpkit.Router) {
		if len(b.Mw) > 0 {
			rr = rr.With(b.Mw...)
		}
		rr = b.Subrouter(rr)
		register(rr)
		b.Register(rr)
	}
	if b.Prefix == "" || b.Prefix == "/" {
		r.Group(mount)
		return
	}
	r.Route(b.Prefix, mount)
}
