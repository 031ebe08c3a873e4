package modkit

import (
	"net/http"

	"foodproxy/internal/modkit/httpkit"
)

// Option sets one field of a module's Built
type Option func(*Built)

// WithName names the module in logs and panics
func WithName(name string) Option {
	return func(b *Built) { b.Name = name }
}

// WithPrefix mounts the module under prefix, e.g. "/api/foods"
// "" and "/" both mean the router root
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.Prefix = prefix }
}

// WithMiddlewares appends module scoped middleware; it runs after the common stack
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands the module a value it type switches on
// foods and barcode accept a replacement upstream source, meta accepts the modules to watch
func WithPorts[T any](p T) Option {
	return func(b *Built) { b.Ports = p }
}

// WithSubrouter rewrites the router the module registers on, after prefix and middleware
func WithSubrouter(fn func(httpkit.Router) httpkit.Router) Option {
	return func(b *Built) { b.Subrouter = fn }
}

// WithRegister mounts extra routes next to the module's own
func WithRegister(fn func(httpkit.Router)) Option {
	return func(b *Built) { b.Register = fn }
}
