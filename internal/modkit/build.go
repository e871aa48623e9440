package modkit

import (
	"net/http"

	"fiscaliza/internal/modkit/httpkit"
)

// Built is the resolved configuration a module reads at construction
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies defaults first, then opts, so callers can override any default
func Build(defaults []Option, opts ...Option) Built {
	var b Built
	for _, o := range defaults {
		o(&b)
	}
	for _, o := range opts {
		o(&b)
	}
	if b.Subrouter == nil {
		b.Subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if b.Register == nil {
		b.Register = func(httpkit.Router) {}
	}
	b.Mw = append([]func(http.Handler) http.Handler(nil), b.Mw...)
	return b
}

// Mount routes fn under b.Prefix with the module middlewares, the
// subrouter hook and the extra Register hook applied in that order
func (b Built) Mount(r httpkit.Router, fn func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, func(sub httpkit.Router) {
		sub = b.Subrouter(sub)
		fn(sub)
		b.Register(sub)
	})
}
