// Package metrics holds the Prometheus counters of the API
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	crossrefLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fiscaliza_crossref_lookups_total",
		Help: "Cross-reference validations by entity and outcome",
	}, []string{"entidade", "resultado"})

	referenceCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fiscaliza_reference_cache_total",
		Help: "Reference snapshot cache lookups by entity and outcome",
	}, []string{"entidade", "resultado"})

	numbering = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fiscaliza_numbering_total",
		Help: "Next notice number computations by outcome",
	}, []string{"resultado"})

	dateRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fiscaliza_date_filter_rejections_total",
		Help: "Period filters aborted on a malformed date",
	})
)

// Outcomes used as label values
const (
	Found    = "encontrado"
	NotFound = "nao_encontrado"
	Hit      = "hit"
	Miss     = "miss"
	OK       = "ok"
	Empty    = "vazio"
	Failed   = "erro"
)

// CrossRefLookup counts one validation of entity
func CrossRefLookup(entity string, matched bool) {
	res := NotFound
	if matched {
		res = Found
	}
	crossrefLookups.WithLabelValues(entity, res).Inc()
}

// ReferenceCache counts one snapshot cache lookup of entity
func ReferenceCache(entity string, hit bool) {
	res := Miss
	if hit {
		res = Hit
	}
	referenceCache.WithLabelValues(entity, res).Inc()
}

// Numbering counts one next-number computation; result is OK, Empty or Failed
func Numbering(result string) { numbering.WithLabelValues(result).Inc() }

// DateFilterRejected counts one period filter aborted on a malformed date
func DateFilterRejected() { dateRejections.Inc() }

// Handler exposes the default registry
func Handler() http.Handler { return promhttp.Handler() }
