// Package module wires notices into the API using modkit
package module

import (
	"time"

	modkit "fiscaliza/internal/modkit"
	"fiscaliza/internal/modkit/httpkit"
	"fiscaliza/internal/modkit/repokit"
	str "fiscaliza/internal/platform/strings"
	"fiscaliza/internal/services/api/irregularidades/domain"
	irrhttp "fiscaliza/internal/services/api/irregularidades/http"
	irrrepo "fiscaliza/internal/services/api/irregularidades/repo"
	irrsvc "fiscaliza/internal/services/api/irregularidades/service"
)

// Module implements the irregularidades module
type Module struct {
	b   modkit.Built
	svc irrsvc.Service
}

// New constructs the notice module. The reference validator is injected with
// modkit.WithPorts and must implement domain.References
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("irregularidades"), modkit.WithPrefix("/irregularidades")}, opts...)
	refs, ok := b.Ports.(domain.References)
	if !ok {
		panic("irregularidades: reference validator port not injected")
	}

	db := repokit.WithBeginHooks(deps.PG,
		repokit.StatementTimeout(deps.Cfg.MayDuration("STATEMENT_TIMEOUT", 5*time.Second)))

	svc := irrsvc.New(db, irrrepo.Binder{}, irrsvc.Options{
		Refs:  refs,
		Sink:  irrrepo.NewClickhouseSink(deps.CH),
		Clock: deps.ClockOrSystem(),
		Loc:   location(deps),
	})
	return &Module{b: b, svc: svc}
}

func location(deps modkit.Deps) *time.Location {
	name := deps.Cfg.MayString("TIMEZONE", "America/Sao_Paulo")
	loc, err := time.LoadLocation(name)
	if err != nil {
		deps.Log.Warn().Err(err).Str("timezone", name).Msg("unknown timezone, using local time")
		return nil
	}
	return loc
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { irrhttp.Register(rr, m.svc) })
}

// Ports exposes the notice service
func (m *Module) Ports() any { return m.svc }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }
