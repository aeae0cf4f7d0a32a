// Package metrics provides the central Prometheus registry reference for
// pagedload. Metrics are defined next to the code they observe (pkg/paged)
// and registered automatically via promauto.
//
// This package documents the available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by pagedload. All
// metrics are automatically registered via promauto in their packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Load Metrics (pkg/paged):
//   - pagedload_loads_total{collection, result} (Counter): Settled load
//     attempts; result is one of loaded, failed, superseded
//   - pagedload_load_duration_seconds{collection} (Histogram): Load
//     attempt duration
//   - pagedload_coalesced_loads_total{collection} (Counter): LoadMore
//     calls that joined an in-flight attempt instead of issuing a query
//   - pagedload_refreshes_total{collection} (Counter): Refresh calls
//   - pagedload_items_appended_total{collection} (Counter): Items
//     appended by successful loads
//
// Example Prometheus Queries:
//
//   # Load failure rate per collection
//   sum by (collection) (rate(pagedload_loads_total{result="failed"}[5m])) /
//   sum by (collection) (rate(pagedload_loads_total[5m]))
//
//   # Coalescing ratio (how often single-flight saved a query)
//   rate(pagedload_coalesced_loads_total[5m]) /
//   rate(pagedload_loads_total[5m])
//
//   # P95 load latency
//   histogram_quantile(0.95, rate(pagedload_load_duration_seconds_bucket[5m]))
