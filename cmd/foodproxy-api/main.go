// @title         Foodie Macro Tracker proxy
// @version       0.1.0
// @description   Normalized food search, detail and barcode lookup over USDA FoodData Central and Open Food Facts

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"foodproxy/internal/core/version"
	"foodproxy/internal/platform/config"
	"foodproxy/internal/platform/logger"
	"foodproxy/internal/platform/metrics"
	phttp "foodproxy/internal/platform/net/http"

	"foodproxy/internal/services/api"
)

func main() {
	// .env first so LOG_* and the rest see it
	dotenvErr := config.LoadDotEnv()

	logger.Init(logger.FromEnv())
	l := logger.Get()
	if dotenvErr != nil {
		l.Warn().Err(dotenvErr).Msg("could not read .env")
	}

	cfg := config.New()
	reg := metrics.NewRegistry()

	if cfg.MayString("USDA_FDC_API_KEY", "") == "" {
		l.Warn().Msg("USDA_FDC_API_KEY is not set; food search and detail will fail upstream")
	}

	// reads PORT, default 8080
	srv := phttp.NewServer(cfg)
	api.Mount(srv.Router(), api.OptionsFromConfig(cfg, reg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l.Info().
		Str("addr", srv.Addr()).
		Str("build", version.Info().String()).
		Msg("foodproxy api listening")

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
