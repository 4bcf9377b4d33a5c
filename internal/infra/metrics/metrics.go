// Package metrics exposes Prometheus counters for account activity and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"
)

const namespace = "tracker"

// Registry owns the collectors of one process. It implements service.AccountMetrics.
type Registry struct {
	registry *prometheus.Registry

	accountsCreated *prometheus.CounterVec
	accountsDeleted prometheus.Counter
	statusChanges   *prometheus.CounterVec
	bulkUpdates     prometheus.Counter
	bulkRequested   prometheus.Counter
	bulkUpdated     prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

var _ service.AccountMetrics = (*Registry)(nil)

// NewRegistry creates the collectors on a private registry, together with the Go runtime collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		accountsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accounts_created_total",
			Help:      "Count of accounts created",
		}, []string{"account_type"}),
		accountsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accounts_deleted_total",
			Help:      "Count of accounts deleted",
		}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "account_status_changes_total",
			Help:      "Count of persisted account status writes",
		}, []string{"from", "to"}),
		bulkUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bulk_updates_total",
			Help:      "Count of bulk status updates",
		}),
		bulkRequested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bulk_update_requested_accounts_total",
			Help:      "Distinct account ids submitted to bulk updates",
		}),
		bulkUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bulk_update_updated_accounts_total",
			Help:      "Accounts written by bulk updates",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by route and status code",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.accountsCreated,
		r.accountsDeleted,
		r.statusChanges,
		r.bulkUpdates,
		r.bulkRequested,
		r.bulkUpdated,
		r.httpRequests,
		r.httpDuration,
	)

	return r
}

// AccountCreated counts a created account.
func (r *Registry) AccountCreated(accountType entity.AccountType) {
	r.accountsCreated.WithLabelValues(string(accountType)).Inc()
}

// AccountDeleted counts a deleted account.
func (r *Registry) AccountDeleted() {
	r.accountsDeleted.Inc()
}

// StatusChanged counts a persisted status write.
func (r *Registry) StatusChanged(from, to entity.AccountStatus) {
	r.statusChanges.WithLabelValues(string(from), string(to)).Inc()
}

// BulkUpdated records one bulk update and how many of its ids were written.
func (r *Registry) BulkUpdated(requested, updated int) {
	r.bulkUpdates.Inc()
	r.bulkRequested.Add(float64(requested))
	r.bulkUpdated.Add(float64(updated))
}

// ObserveHTTP records one served request. route is the matched route pattern, not the raw path.
func (r *Registry) ObserveHTTP(method, route string, code int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer exposes the underlying registry for inspection.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
