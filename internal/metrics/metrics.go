// Package metrics holds the Prometheus collectors exported by the server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Computation results.
const (
	ResultOK      = "ok"
	ResultGuarded = "guarded" // party size <= 0, amount forced to 0
)

// Metrics groups the collectors for split computations and RPCs.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Computations *prometheus.CounterVec
	RPCTotal     *prometheus.CounterVec
	RPCDuration  *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer when nil).
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		Computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "split_computations_total",
			Help:      "Count of per-person amount computations by result.",
		}, []string{"result"}),
		RPCTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Total number of RPCs handled, by procedure and status code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_request_duration_ms",
			Help:      "RPC latency distribution in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"procedure"}),
	}
	reg.MustRegister(m.Computations, m.RPCTotal, m.RPCDuration)
	return m
}

// ObserveComputation records one call into the calculator.
func (m *Metrics) ObserveComputation(partySize int) {
	if m == nil {
		return
	}
	result := ResultOK
	if partySize <= 0 {
		result = ResultGuarded
	}
	m.Computations.WithLabelValues(result).Inc()
}

// ObserveRPC records the outcome and latency of one RPC.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.RPCTotal.WithLabelValues(procedure, code).Inc()
	m.RPCDuration.WithLabelValues(procedure).Observe(float64(d) / float64(time.Millisecond))
}
