package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campusmap_requests_total",
		Help: "Total number of API requests",
	})
	RequestDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "campusmap_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	BoundaryChecksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campusmap_boundary_checks_total",
		Help: "Campus boundary checks by result",
	}, []string{"result"})
	SessionsCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campusmap_sessions_created_total",
		Help: "View sessions created by kind",
	}, []string{"view"})
	DirectivesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campusmap_directives_total",
		Help: "Map directives emitted by op",
	}, []string{"op"})
	PopupRendersTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campusmap_popup_renders_total",
		Help: "Total request popups rendered",
	})
	SearchQueriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campusmap_search_queries_total",
		Help: "Total browse search queries applied",
	})
	LocateResultsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campusmap_locate_results_total",
		Help: "Locate attempts by outcome",
	}, []string{"outcome"})
	NearbyQueriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campusmap_nearby_queries_total",
		Help: "Total nearest-request lookups",
	})
	NearbyDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "campusmap_nearby_duration_ms",
		Help:    "Nearest-request lookup duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(BoundaryChecksTotal)
	prometheus.MustRegister(SessionsCreatedTotal)
	prometheus.MustRegister(DirectivesTotal)
	prometheus.MustRegister(PopupRendersTotal)
	prometheus.MustRegister(SearchQueriesTotal)
	prometheus.MustRegister(LocateResultsTotal)
	prometheus.MustRegister(NearbyQueriesTotal)
	prometheus.MustRegister(NearbyDurationMs)
}

// Handler exposes the registered metrics for scraping.
func Handler() http.Handler { return promhttp.Handler() }

// ObserveDirectives bumps the per-op directive counter for a batch.
func ObserveDirectives(ops []string) {
	for _, op := range ops {
		DirectivesTotal.WithLabelValues(op).Inc()
	}
}
