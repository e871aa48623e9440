// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "fiscaliza/internal/modkit"
	"fiscaliza/internal/modkit/httpkit"
	str "fiscaliza/internal/platform/strings"

	metahttp "fiscaliza/internal/services/api/meta/http"
)

// ServiceName is reported by /meta endpoints
const ServiceName = "fiscaliza-api"

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)

	clock := deps.ClockOrSystem()
	d := metahttp.Deps{
		ServiceName:  ServiceName,
		StartedAt:    clock.Now(),
		Clock:        clock,
		ReadyTimeout: deps.Cfg.MayDuration("READY_TIMEOUT", 2*time.Second),
		CH:           deps.CH,
	}
	if p, ok := deps.PG.(metahttp.Pinger); ok {
		d.PG = p
	}
	return &Module{b: b, deps: d}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
