package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/louisbranch/showcase/internal/services/web/platform/httpx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "showcase_web"

// Metrics are the service's prometheus collectors.
type Metrics struct {
	gatherer        prometheus.Gatherer
	requests        *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	menuTransitions *prometheus.CounterVec
	themeToggles    *prometheus.CounterVec
	donations       prometheus.Counter
}

// NewMetrics registers collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewMetricsWithRegistry(reg, reg)
}

// NewMetricsWithRegistry registers collectors on reg and serves gatherer.
func NewMetricsWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	m := &Metrics{
		gatherer: gatherer,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		menuTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "menu_transitions_total",
			Help:      "Header menu events by event kind and resulting mode.",
		}, []string{"event", "mode"}),
		themeToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_toggles_total",
			Help:      "Theme toggles by resulting theme.",
		}, []string{"theme"}),
		donations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "donations_total",
			Help:      "Donation actions.",
		}),
	}
	reg.MustRegister(m.requests, m.latency, m.menuTransitions, m.themeToggles, m.donations)
	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency.
func (m *Metrics) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := wrapWriter(w)
			next.ServeHTTP(rec, r)
			route := routeLabel(r)
			m.requests.WithLabelValues(r.Method, route, strconv.Itoa(rec.statusCode())).Inc()
			m.latency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

// MenuTransition counts one menu event and the mode it produced.
func (m *Metrics) MenuTransition(event, mode string) {
	if m == nil {
		return
	}
	m.menuTransitions.WithLabelValues(event, mode).Inc()
}

// ThemeToggled counts one toggle to theme.
func (m *Metrics) ThemeToggled(theme string) {
	if m == nil {
		return
	}
	m.themeToggles.WithLabelValues(theme).Inc()
}

// Donated counts one donation action.
func (m *Metrics) Donated() {
	if m == nil {
		return
	}
	m.donations.Inc()
}
