package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

type MetricsObserver struct {
	Calls     *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

// NewMetricsObserver reg 為 nil 時使用 prometheus.DefaultRegisterer
func NewMetricsObserver(reg prometheus.Registerer) *MetricsObserver {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "client",
		Name:      "backend_calls_total",
		Help:      "Backend call lifecycle events by component, operation and stage.",
	}, []string{"component", "op", "stage"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Subsystem: "client",
		Name:      "backend_call_duration_ms",
		Help:      "Backend call latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"component", "op"})

	reg.MustRegister(calls, latency)
	return &MetricsObserver{Calls: calls, LatencyMS: latency}
}

func (m *MetricsObserver) Observe(evt Event) {
	m.Calls.WithLabelValues(evt.Component, evt.Op, string(evt.Stage)).Inc()
	if evt.Stage == StageSucceeded || evt.Stage == StageFailed {
		m.LatencyMS.WithLabelValues(evt.Component, evt.Op).Observe(float64(evt.Duration.Milliseconds()))
	}
}
