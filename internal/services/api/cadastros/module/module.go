// Package module wires the reference tables into the API using modkit
package module

import (
	"time"

	modkit "fiscaliza/internal/modkit"
	"fiscaliza/internal/modkit/httpkit"
	str "fiscaliza/internal/platform/strings"
	cadhttp "fiscaliza/internal/services/api/cadastros/http"
	cadsvc "fiscaliza/internal/services/api/cadastros/service"
)

// Module implements the cadastros module
type Module struct {
	b     modkit.Built
	svc   *cadsvc.Service
	ports Ports
}

// New constructs the cadastros module over deps.PG. The snapshot cache TTL
// comes from REF_CACHE_TTL
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("cadastros"), modkit.WithPrefix("/cadastros")}, opts...)
	ttl := deps.Cfg.MayDuration("REF_CACHE_TTL", time.Minute)
	return NewWithService(b, cadsvc.New(cadsvc.BindRepos(deps.PG), ttl))
}

// NewWithService builds the module around an existing service
func NewWithService(b modkit.Built, s *cadsvc.Service) *Module {
	return &Module{b: b, svc: s, ports: Ports{Validator: s}}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { cadhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }
