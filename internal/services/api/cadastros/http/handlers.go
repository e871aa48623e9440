// Package http provides http transport for the reference tables
package http

import (
	"context"
	stdhttp "net/http"

	"fiscaliza/internal/core/crossref"
	"fiscaliza/internal/modkit/httpkit"
	svc "fiscaliza/internal/services/api/cadastros/service"
)

// Catalog is what the handlers need from one reference entity
type Catalog[R crossref.Record[string]] interface {
	List(ctx context.Context) ([]R, error)
	Get(ctx context.Context, id string) (R, error)
	Create(ctx context.Context, rec R) (R, error)
	Update(ctx context.Context, id string, rec R) (R, error)
	Delete(ctx context.Context, id string) error
	Validate(ctx context.Context, key string) (crossref.Result, error)
}

// Register mounts one route group per reference entity
func Register(r httpkit.Router, s *svc.Service) {
	Mount(r, crossref.Agent.Plural(), s.Agents)
	Mount(r, crossref.Vehicle.Plural(), s.Vehicles)
	Mount(r, crossref.Line.Plural(), s.Lines)
	Mount(r, crossref.Consortium.Plural(), s.Consortia)
	Mount(r, crossref.InfractionType.Plural(), s.Infractions)
}

// Mount registers the CRUD and validation routes of c under /plural
func Mount[R crossref.Record[string]](r httpkit.Router, plural string, c Catalog[R]) {
	h := &handlers[R]{c: c}
	r.Route("/"+plural, func(rr httpkit.Router) {
		httpkit.Get(rr, "/", h.list)
		httpkit.PostJSON(rr, "/", h.create)
		// static segment before {id}
		httpkit.Get(rr, "/validar/{chave}", h.validate)
		httpkit.Get(rr, "/{id}", h.get)
		httpkit.PutJSON(rr, "/{id}", h.update)
		httpkit.Delete(rr, "/{id}", h.delete)
	})
}

type handlers[R crossref.Record[string]] struct{ c Catalog[R] }

// @Summary List reference records ordered by key
// @Tags Cadastros
// @Produce json
// @Param entidade path string true "Entity" Enums(agentes,veiculos,linhas,consorcios,infracoes)
// @Success 200 {array} domain.Line "ok"
// @Router /cadastros/{entidade} [get]
func (h *handlers[R]) list(r *stdhttp.Request) (any, error) {
	return h.c.List(r.Context())
}

// @Summary Get a reference record by id
// @Tags Cadastros
// @Produce json
// @Param entidade path string true "Entity"
// @Param id path string true "Record id"
// @Success 200 {object} domain.Line "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /cadastros/{entidade}/{id} [get]
func (h *handlers[R]) get(r *stdhttp.Request) (any, error) {
	return h.c.Get(r.Context(), httpkit.Param(r, "id"))
}

// @Summary Create a reference record
// @Tags Cadastros
// @Accept json
// @Produce json
// @Param entidade path string true "Entity"
// @Success 201 {object} domain.Line "created"
// @Failure 409 {object} httpkit.Envelope "duplicate key"
// @Router /cadastros/{entidade} [post]
func (h *handlers[R]) create(r *stdhttp.Request, in R) (any, error) {
	out, err := h.c.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// @Summary Replace a reference record
// @Tags Cadastros
// @Accept json
// @Produce json
// @Param entidade path string true "Entity"
// @Param id path string true "Record id"
// @Success 200 {object} domain.Line "ok"
// @Router /cadastros/{entidade}/{id} [put]
func (h *handlers[R]) update(r *stdhttp.Request, in R) (any, error) {
	return h.c.Update(r.Context(), httpkit.Param(r, "id"), in)
}

// @Summary Delete a reference record
// @Tags Cadastros
// @Param entidade path string true "Entity"
// @Param id path string true "Record id"
// @Success 204 "deleted"
// @Router /cadastros/{entidade}/{id} [delete]
func (h *handlers[R]) delete(r *stdhttp.Request) (any, error) {
	if err := h.c.Delete(r.Context(), httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Cross-check a key against the reference table
// @Description Unknown keys are not an error: encontrado is false and rotulo carries the not found label
// @Tags Cadastros
// @Produce json
// @Param entidade path string true "Entity"
// @Param chave path string true "Key"
// @Success 200 {object} crossref.Result "ok"
// @Router /cadastros/{entidade}/validar/{chave} [get]
func (h *handlers[R]) validate(r *stdhttp.Request) (any, error) {
	return h.c.Validate(r.Context(), httpkit.Param(r, "chave"))
}
