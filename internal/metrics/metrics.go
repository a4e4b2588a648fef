// Package metrics exposes Prometheus counters for swap computations.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "maniswap"

// Outcome labels for the swaps counter.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidToken = "invalid_token"
	OutcomeRejected     = "rejected"
)

type Metrics struct {
	swaps      *prometheus.CounterVec
	degenerate prometheus.Counter
	poolReads  *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates the swap counters and registers them on a fresh registry.
func New() (*Metrics, error) {
	m := &Metrics{
		swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swaps_total",
			Help:      "number of swap computations by outcome and direction",
		}, []string{"outcome", "direction"}),
		degenerate: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degenerate_swaps_total",
			Help:      "number of swaps whose amount out was zero, negative or non-finite",
		}),
		poolReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pool_reads_total",
			Help:      "number of on-chain pool state reads by result",
		}, []string{"result"}),
		registry: prometheus.NewRegistry(),
	}
	err := errors.Join(
		m.registry.Register(m.swaps),
		m.registry.Register(m.degenerate),
		m.registry.Register(m.poolReads),
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) Swap(outcome, direction string) {
	m.swaps.WithLabelValues(outcome, direction).Inc()
}

func (m *Metrics) Degenerate() { m.degenerate.Inc() }

func (m *Metrics) PoolRead(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	m.poolReads.WithLabelValues(result).Inc()
}
