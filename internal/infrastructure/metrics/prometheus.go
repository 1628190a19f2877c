// Package metrics expone contadores Prometheus de tráfico HTTP y movimientos de stock.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/domain/entity"
)

const namespace = "stock_api"

var _ inventory.Recorder = (*Metrics)(nil)

// Metrics tiene un registry propio; los tests pueden crear cuantos necesiten.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	movementsApplied  *prometheus.CounterVec
	unitsMoved        *prometheus.CounterVec
	movementsRejected *prometheus.CounterVec
}

// New registra todos los collectors, más los del runtime de Go y del proceso.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		movementsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_movements_applied_total",
			Help:      "Stock movements committed to the ledger.",
		}, []string{"type"}),
		unitsMoved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_units_moved_total",
			Help:      "Units moved by committed stock movements.",
		}, []string{"type"}),
		movementsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_movements_rejected_total",
			Help:      "Stock movement attempts that were rolled back or refused.",
		}, []string{"type", "reason"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpDuration,
		m.movementsApplied, m.unitsMoved, m.movementsRejected,
	)
	return m
}

// Handler sirve el registry en formato de texto Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP registra una petición terminada. route es el patrón de ruta, no el path crudo.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) MovementApplied(t entity.MovementType, quantity int64) {
	m.movementsApplied.WithLabelValues(string(t)).Inc()
	m.unitsMoved.WithLabelValues(string(t)).Add(float64(quantity))
}

func (m *Metrics) MovementRejected(t entity.MovementType, reason string) {
	label := string(t)
	if !t.Valid() {
		label = "invalid"
	}
	m.movementsRejected.WithLabelValues(label, reason).Inc()
}
