// Package module wires the notice analytics into the API using modkit
package module

import (
	modkit "fiscaliza/internal/modkit"
	"fiscaliza/internal/modkit/httpkit"
	str "fiscaliza/internal/platform/strings"
	"fiscaliza/internal/services/api/estatisticas/domain"
	esthttp "fiscaliza/internal/services/api/estatisticas/http"
	estrepo "fiscaliza/internal/services/api/estatisticas/repo"
	estsvc "fiscaliza/internal/services/api/estatisticas/service"
)

// Module implements the estatisticas module
type Module struct {
	b   modkit.Built
	svc estsvc.Service
}

// New constructs the analytics module over deps.CH, which must be set.
// A domain.References port, when injected, names the infractions
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("estatisticas"), modkit.WithPrefix("/estatisticas")}, opts...)
	refs, _ := b.Ports.(domain.References)
	return &Module{b: b, svc: estsvc.New(estrepo.New(deps.CH), refs)}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { esthttp.Register(rr, m.svc) })
}

// Ports exposes the analytics service
func (m *Module) Ports() any { return m.svc }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }
