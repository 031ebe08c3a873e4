// Package api provides the HTTP API for the food proxy
package api

import (
	"net/http"

	"foodproxy/internal/platform/config"
	perr "foodproxy/internal/platform/errors"
	"foodproxy/internal/platform/metrics"
	phttp "foodproxy/internal/platform/net/http"

	"foodproxy/internal/modkit"
	"foodproxy/internal/modkit/httpkit"
	"foodproxy/internal/modkit/swaggerkit"

	barcodemod "foodproxy/internal/services/api/barcode/module"
	foodsmod "foodproxy/internal/services/api/foods/module"
	metamod "foodproxy/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Metrics        *metrics.Registry
	EnableMetrics  bool
	EnableSwagger  bool
	EnableProfiler bool

	// Deps overrides the upstream clients built from Config, used by tests
	Deps *modkit.Deps
}

// OptionsFromConfig reads the PROXY_* feature switches
func OptionsFromConfig(cfg config.Conf, reg *metrics.Registry) Options {
	return Options{
		Config:         cfg,
		Metrics:        reg,
		EnableMetrics:  cfg.MayBool("PROXY_METRICS", true),
		EnableSwagger:  cfg.MayBool("PROXY_SWAGGER", false),
		EnableProfiler: cfg.MayBool("PROXY_PROFILER", false),
	}
}

// Mount mounts the API onto r
func Mount(r phttp.Router, opt Options) {
	deps := modkit.DepsFromConfig(opt.Config, opt.Metrics)
	if opt.Deps != nil {
		deps = *opt.Deps
	}

	r.Use(httpkit.CommonStack(httpkit.StackFromConfig(opt.Config, opt.Metrics))...)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		phttp.RespondError(w, req, perr.NotFoundf("Not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		phttp.JSON(w, http.StatusMethodNotAllowed, perr.Wire{Error: http.StatusText(http.StatusMethodNotAllowed)})
	})

	upstreams := modkit.BuildAll(deps, foodsmod.New, barcodemod.New)
	meta := metamod.New(deps, modkit.WithPorts(metamod.Ports{Watch: upstreams}))
	modkit.MountAll(r, &deps.Log, append([]modkit.Module{meta}, upstreams...)...)

	if opt.EnableMetrics {
		r.Handle("/metrics", opt.Metrics.Handler())
	}
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
}
