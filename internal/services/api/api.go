// Package api provides the HTTP API for the application
package api

import (
	"net/http"
	"time"

	"fiscaliza/internal/platform/auth"
	"fiscaliza/internal/platform/config"
	"fiscaliza/internal/platform/logger"
	"fiscaliza/internal/platform/metrics"
	phttp "fiscaliza/internal/platform/net/http"
	"fiscaliza/internal/platform/store"
	ptime "fiscaliza/internal/platform/time"

	"fiscaliza/internal/modkit"
	"fiscaliza/internal/modkit/httpkit"
	"fiscaliza/internal/modkit/module"
	"fiscaliza/internal/modkit/swaggerkit"

	cadmod "fiscaliza/internal/services/api/cadastros/module"
	estmod "fiscaliza/internal/services/api/estatisticas/module"
	irrdomain "fiscaliza/internal/services/api/irregularidades/domain"
	irrmod "fiscaliza/internal/services/api/irregularidades/module"
	metamod "fiscaliza/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	// Config is scoped to FISCALIZA_API_
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Clock          ptime.Clock
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts every module onto r and returns the port registry
func Mount(r phttp.Router, opt Options) *module.Registry {
	log := *logger.Get()
	if opt.Logger != nil {
		log = *opt.Logger
	}
	deps := modkit.Deps{
		Log:   log,
		Cfg:   opt.Config,
		Clock: opt.Clock,
	}
	if opt.Store != nil {
		deps.PG, deps.CH = opt.Store.PG, opt.Store.CH
	}

	// clerk routes take JSON only and sit behind bearer auth once a secret is
	// configured; meta stays open
	guarded := []modkit.Option{modkit.WithMiddlewares(httpkit.JSONOnly())}
	if mw := authMiddleware(opt.Config, deps.ClockOrSystem(), log); mw != nil {
		guarded = append(guarded, modkit.WithMiddlewares(mw))
	}

	with := func(extra ...modkit.Option) []modkit.Option {
		return append(append([]modkit.Option(nil), guarded...), extra...)
	}

	cad := cadmod.New(deps, with()...)
	refs := module.MustPortsOf[irrdomain.References](cad)

	mods := []module.Module{
		metamod.New(deps),
		cad,
		irrmod.New(deps, with(modkit.WithPorts(refs))...),
	}
	if deps.CH != nil {
		mods = append(mods, estmod.New(deps, with(modkit.WithPorts(refs))...))
	} else {
		log.Info().Msg("clickhouse disabled; estatisticas not mounted")
	}

	reg := module.NewRegistry()
	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.Config.MayCSV("CORS_ORIGINS", nil),
		SlowRequest: opt.Config.MayDuration("SLOW_REQUEST", time.Second),
		Heartbeat:   "/api/v1/ping",
		MaxInFlight: opt.Config.MayInt("MAX_INFLIGHT", 256),
	})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			reg.Add(m)
			m.MountRoutes(api)
		}
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics {
		r.Handle("/metrics", metrics.Handler())
	}

	log.Info().Strs("modulos", reg.Names()).Bool("swagger", opt.EnableSwagger).Bool("metrics", opt.EnableMetrics).Msg("api mounted")
	return reg
}

func authMiddleware(cfg config.Conf, clock ptime.Clock, log logger.Logger) func(http.Handler) http.Handler {
	secret := cfg.MayString("JWT_SECRET", "")
	if secret == "" {
		log.Warn().Msg("JWT_SECRET not set; API routes are not authenticated")
		return nil
	}
	tokens, err := auth.New(auth.Options{
		Secret: secret,
		Issuer: cfg.MayString("JWT_ISSUER", "fiscaliza"),
		TTL:    cfg.MayDuration("JWT_TTL", auth.DefaultTTL),
		Clock:  clock,
	})
	if err != nil {
		log.Panic().Err(err).Msg("auth setup failed")
	}
	return httpkit.Auth(httpkit.NewPortFunc(tokens.Parse))
}
