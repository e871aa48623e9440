// Package http provides http transport for notices
package http

import (
	stdhttp "net/http"

	"fiscaliza/internal/modkit/httpkit"
	"fiscaliza/internal/services/api/irregularidades/domain"
)

// Register mounts the notice endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON(r, "/", h.create)

	// workflows; static segments come before {id}
	httpkit.PostJSON(r, "/consulta", h.query)
	httpkit.Get(r, "/proximo-numero", h.nextNumber)
	httpkit.PostJSON(r, "/validar", h.validate)
	httpkit.PostJSON(r, "/impressao", h.print)
	httpkit.PostJSON(r, "/protocolo", h.protocol)

	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON(r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.delete)
}

type handlers struct{ svc domain.ServicePort }

// @Summary List every notice
// @Tags Irregularidades
// @Produce json
// @Success 200 {array} domain.Notice "ok"
// @Router /irregularidades [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// @Summary Query notices by number or period
// @Description Exactly one of numeroIrregularidade or the period (dataInicio, dataFim) is required. A malformed date anywhere aborts the query with 422
// @Tags Irregularidades
// @Accept json
// @Produce json
// @Param payload body domain.QueryInput true "Query"
// @Success 200 {object} httpkit.Envelope "itens and paginacao; paginacao.total is the match count"
// @Failure 422 {object} httpkit.Envelope "malformed date"
// @Router /irregularidades/consulta [post]
func (h *handlers) query(r *stdhttp.Request, in domain.QueryInput) (any, error) {
	p, err := h.svc.Query(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.List(p.Items, p.Total, p.Page, p.Size), nil
}

// @Summary Get a notice by id
// @Tags Irregularidades
// @Produce json
// @Param id path string true "Notice id"
// @Success 200 {object} domain.Notice "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /irregularidades/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "id"))
}

// @Summary Register a notice
// @Tags Irregularidades
// @Accept json
// @Produce json
// @Param payload body domain.Notice true "Notice"
// @Success 201 {object} domain.Notice "created"
// @Failure 409 {object} httpkit.Envelope "number already in use"
// @Router /irregularidades [post]
func (h *handlers) create(r *stdhttp.Request, in domain.Notice) (any, error) {
	n, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(n), nil
}

// @Summary Replace a notice
// @Tags Irregularidades
// @Accept json
// @Produce json
// @Param id path string true "Notice id"
// @Param payload body domain.Notice true "Notice"
// @Success 200 {object} domain.Notice "ok"
// @Router /irregularidades/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.Notice) (any, error) {
	return h.svc.Update(r.Context(), httpkit.Param(r, "id"), in)
}

// @Summary Delete a notice
// @Tags Irregularidades
// @Param id path string true "Notice id"
// @Success 204 "deleted"
// @Router /irregularidades/{id} [delete]
func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Suggest the next notice number
// @Description Advisory: two clerks may get the same suggestion; the second create fails with 409
// @Tags Irregularidades
// @Produce json
// @Success 200 {object} domain.NextNumber "ok"
// @Failure 409 {object} httpkit.Envelope "no notice stored yet"
// @Router /irregularidades/proximo-numero [get]
func (h *handlers) nextNumber(r *stdhttp.Request) (any, error) {
	return h.svc.NextNumber(r.Context())
}

// @Summary Cross-check the reference keys of a draft notice
// @Tags Irregularidades
// @Accept json
// @Produce json
// @Param payload body domain.ValidateInput true "Draft keys"
// @Success 200 {object} domain.ValidationReport "ok"
// @Router /irregularidades/validar [post]
func (h *handlers) validate(r *stdhttp.Request, in domain.ValidateInput) (any, error) {
	return h.svc.Validate(r.Context(), in)
}

// @Summary Build the print sheet of a period or a single notice
// @Tags Irregularidades
// @Accept json
// @Produce json
// @Param payload body domain.PrintInput true "Selection"
// @Success 200 {object} domain.PrintSheet "ok"
// @Router /irregularidades/impressao [post]
func (h *handlers) print(r *stdhttp.Request, in domain.PrintInput) (any, error) {
	return h.svc.Print(r.Context(), in)
}

// @Summary Build the delivery protocol of a period or a single notice
// @Tags Irregularidades
// @Accept json
// @Produce json
// @Param payload body domain.ProtocolInput true "Selection"
// @Success 200 {object} domain.Protocol "ok"
// @Router /irregularidades/protocolo [post]
func (h *handlers) protocol(r *stdhttp.Request, in domain.ProtocolInput) (any, error) {
	return h.svc.Protocol(r.Context(), in)
}
