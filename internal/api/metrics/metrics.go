// Package metrics defines and registers the custom Prometheus metrics of the
// demo backend. It is the single source of truth for metric names, labels,
// and help strings.
//
// All metrics register with the default registry at package init through
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
)

const namespace = "admin_demo"

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreMutationsTotal counts changes applied to the domain store.
// Label:
//   - kind: the change kind (e.g. "user.added", "todo.toggled")
var StoreMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_mutations_total",
		Help:      "Total number of mutations applied to the domain store, by change kind.",
	},
	[]string{"kind"},
)

// FetchUsersDuration measures the simulated user list round trip.
// Label:
//   - result: "ok" or "error"
var FetchUsersDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "fetch_users_duration_seconds",
		Help:      "Duration of simulated user list fetches.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// ChangeQueueDepth tracks the number of changes waiting in each dispatcher worker.
// Label:
//   - worker_id: numeric worker index
var ChangeQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "change_queue_depth",
		Help:      "Current number of store changes pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ChangesDroppedTotal counts changes dropped because a worker buffer was full.
var ChangesDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "changes_dropped_total",
		Help:      "Total number of store changes dropped on a full dispatcher queue.",
	},
)

// ── Mock backend metrics ──────────────────────────────────────────────────────

// MockRequestsTotal counts requests answered by the fake backend.
// Labels:
//   - endpoint: "login" or "user_info"
//   - code: the envelope code ("200" or "201")
var MockRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mock_requests_total",
		Help:      "Total number of fake backend requests, by endpoint and envelope code.",
	},
	[]string{"endpoint", "code"},
)

// RecordChange is a store observer feeding StoreMutationsTotal.
func RecordChange(c domain.Change) {
	StoreMutationsTotal.WithLabelValues(string(c.Kind)).Inc()
}
