package modkit

import (
	"time"

	"foodproxy/internal/adapters/upstream/fdc"
	"foodproxy/internal/adapters/upstream/off"
	"foodproxy/internal/platform/config"
	"foodproxy/internal/platform/logger"
	"foodproxy/internal/platform/metrics"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Metrics *metrics.Registry
	FDC     *fdc.Client
	OFF     *off.Client
}

// DepsFromConfig builds the upstream clients from PROXY_* and USDA_* keys
func DepsFromConfig(cfg config.Conf, reg *metrics.Registry) Deps {
	timeout := cfg.MayDuration("PROXY_UPSTREAM_TIMEOUT", 10*time.Second)
	return Deps{
		Log:     *logger.Named("api"),
		Cfg:     cfg,
		Metrics: reg,
		FDC: fdc.NewClient(fdc.Options{
			BaseURL: cfg.MayURL("PROXY_FDC_BASE_URL", fdc.DefaultBaseURL),
			APIKey:  cfg.MayString("USDA_FDC_API_KEY", ""),
			Timeout: timeout,
			Metrics: reg,
		}),
		OFF: off.NewClient(off.Options{
			BaseURL:   cfg.MayURL("PROXY_OFF_BASE_URL", off.DefaultBaseURL),
			UserAgent: cfg.MayString("PROXY_OFF_USER_AGENT", off.DefaultUserAgent),
			Timeout:   timeout,
			Metrics:   reg,
		}),
	}
}
