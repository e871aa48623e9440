// Package http provides http transport for the notice analytics
package http

import (
	stdhttp "net/http"

	"fiscaliza/internal/modkit/httpkit"
	"fiscaliza/internal/services/api/estatisticas/domain"
)

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// net totals per infraction code
	httpkit.PostJSON(r, "/infracoes", h.byInfraction)

	// net totals per month
	httpkit.PostJSON(r, "/mensal", h.byMonth)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Notices per infraction in a year
// @Description Totals are net of edits and deletions
// @Tags Estatisticas
// @Accept json
// @Produce json
// @Param payload body domain.YearInput true "Year"
// @Success 200 {array} domain.ByInfractionRow "ok"
// @Router /estatisticas/infracoes [post]
func (h *handlers) byInfraction(r *stdhttp.Request, in domain.YearInput) (any, error) {
	return h.svc.ByInfraction(r.Context(), in)
}

// @Summary Notices per month in a year
// @Tags Estatisticas
// @Accept json
// @Produce json
// @Param payload body domain.YearInput true "Year"
// @Success 200 {array} domain.ByMonthRow "ok"
// @Router /estatisticas/mensal [post]
func (h *handlers) byMonth(r *stdhttp.Request, in domain.YearInput) (any, error) {
	return h.svc.ByMonth(r.Context(), in)
}
