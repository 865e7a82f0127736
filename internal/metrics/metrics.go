// Package metrics exports sync outcomes, upstream call latency and bills API
// traffic to prometheus.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"billsync/internal/domain"
)

const namespace = "billsync"

// SyncMetrics registers its collectors on a private registry.
type SyncMetrics struct {
	registry *prometheus.Registry

	runs          *prometheus.CounterVec
	bills         *prometheus.CounterVec
	related       *prometheus.CounterVec
	itemErrors    prometheus.Counter
	runDuration   prometheus.Histogram
	lastRun       *prometheus.GaugeVec
	upstreamCalls *prometheus.CounterVec
	upstreamTime  *prometheus.HistogramVec
	apiRequests   *prometheus.CounterVec
	apiTime       *prometheus.HistogramVec
}

func New() *SyncMetrics {
	m := &SyncMetrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_runs_total",
			Help:      "Sync runs by result.",
		}, []string{"result"}),
		bills: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bills_synced_total",
			Help:      "Bills written by sync runs.",
		}, []string{"operation"}),
		related: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "related_records_created_total",
			Help:      "Subjects, actions and cosponsors created by sync runs.",
		}, []string{"kind"}),
		itemErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_errors_total",
			Help:      "Error lines reported by sync runs.",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Wall time of sync runs.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		}),
		lastRun: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_sync_timestamp_seconds",
			Help:      "Unix time of the last completed sync run per congress.",
		}, []string{"congress"}),
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream API requests by service and status code.",
		}, []string{"service", "code"}),
		upstreamTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of upstream API requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service"}),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Bills API requests by route and status code.",
		}, []string{"method", "route", "code"}),
		apiTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of bills API requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		m.runs,
		m.bills,
		m.related,
		m.itemErrors,
		m.runDuration,
		m.lastRun,
		m.upstreamCalls,
		m.upstreamTime,
		m.apiRequests,
		m.apiTime,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *SyncMetrics) ObserveOutcome(outcome *domain.SyncOutcome) {
	result := "ok"
	if len(outcome.Errors) > 0 {
		result = "error"
	}
	m.runs.WithLabelValues(result).Inc()

	m.bills.WithLabelValues("created").Add(float64(outcome.BillsCreated))
	m.bills.WithLabelValues("updated").Add(float64(outcome.BillsUpdated))
	m.related.WithLabelValues("subjects").Add(float64(outcome.SubjectsCreated))
	m.related.WithLabelValues("actions").Add(float64(outcome.ActionsCreated))
	m.related.WithLabelValues("cosponsors").Add(float64(outcome.CosponsorsCreated))
	m.itemErrors.Add(float64(len(outcome.Errors)))
	m.runDuration.Observe(outcome.Duration.Seconds())
	m.lastRun.WithLabelValues(strconv.Itoa(outcome.Congress)).Set(float64(time.Now().Unix()))
}

// RecordCall counts an upstream request. A zero status code means the
// request never got a response.
func (m *SyncMetrics) RecordCall(_ context.Context, call *domain.APICall) error {
	code := "none"
	if call.StatusCode != 0 {
		code = strconv.Itoa(call.StatusCode)
	}
	m.upstreamCalls.WithLabelValues(call.Service, code).Inc()
	m.upstreamTime.WithLabelValues(call.Service).Observe(call.ResponseTime)
	return nil
}

// ObserveRequest counts one bills API request. route is the matched route
// pattern, not the raw path.
func (m *SyncMetrics) ObserveRequest(method, route string, code int, elapsed time.Duration) {
	m.apiRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.apiTime.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *SyncMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *SyncMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
