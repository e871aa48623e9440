// @title         fiscaliza API
// @version       1.0
// @description   Registro, consulta, validação e impressão de irregularidades do transporte coletivo

package main

import (
	"context"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"fiscaliza/internal/modkit/repokit"
	"fiscaliza/internal/platform/config"
	"fiscaliza/internal/platform/logger"
	phttp "fiscaliza/internal/platform/net/http"
	"fiscaliza/internal/platform/store"

	"fiscaliza/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// logging first so config failures are logged
	opts := logger.FromEnv()
	if opts.Service == "" {
		opts.Service = "fiscaliza-api"
	}
	logger.Init(opts)
	l := logger.Get()

	root := config.New()
	apiCfg := root.Prefix("FISCALIZA_API_")

	st, err := store.Open(ctx, store.FromEnv(root, "api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	// http server (reads FISCALIZA_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.Options{
		Config:         apiCfg,
		Store:          st,
		Logger:         l,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		EnableMetrics:  apiCfg.MayBool("METRICS", true),
	})

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
