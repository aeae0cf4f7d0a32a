package paged

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for collection load operations.
var (
	loadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagedload_loads_total",
		Help: "Settled load attempts by collection and result",
	}, []string{"collection", "result"})

	loadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pagedload_load_duration_seconds",
		Help:    "Load attempt duration in seconds by collection",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
	}, []string{"collection"})

	coalescedLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagedload_coalesced_loads_total",
		Help: "LoadMore calls coalesced onto an in-flight attempt",
	}, []string{"collection"})

	refreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagedload_refreshes_total",
		Help: "Refresh calls by collection",
	}, []string{"collection"})

	itemsAppendedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagedload_items_appended_total",
		Help: "Items appended to collections by successful loads",
	}, []string{"collection"})
)

// Result label values for pagedload_loads_total.
const (
	resultLoaded     = "loaded"
	resultFailed     = "failed"
	resultSuperseded = "superseded"
)
