// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Per-operation result counters. ResultMetrics is an api.Observer: install it
// with socket.SetObserver and every operation outcome is counted both in a
// local snapshot and in a Prometheus counter vector.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-net/api"
	"github.com/prometheus/client_golang/prometheus"
)

// OpResult keys one counter: an operation name and its outcome.
type OpResult struct {
	Op     string
	Result api.Result
}

// ResultMetrics counts operation outcomes.
type ResultMetrics struct {
	mu      sync.RWMutex
	counts  map[OpResult]uint64
	updated time.Time
	vec     *prometheus.CounterVec
}

// NewResultMetrics creates the counters and registers them with reg. A nil
// reg skips registration.
func NewResultMetrics(reg prometheus.Registerer) (*ResultMetrics, error) {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hioload",
		Subsystem: "socket",
		Name:      "operations_total",
		Help:      "Socket operations by operation name, result and result class.",
	}, []string{"op", "result", "class"})
	if reg != nil {
		if err := reg.Register(vec); err != nil {
			return nil, err
		}
	}
	return &ResultMetrics{
		counts: make(map[OpResult]uint64),
		vec:    vec,
	}, nil
}

// Observe implements api.Observer.
func (m *ResultMetrics) Observe(op string, r api.Result) {
	m.vec.WithLabelValues(op, r.String(), r.Class().String()).Inc()
	m.mu.Lock()
	m.counts[OpResult{Op: op, Result: r}]++
	m.updated = time.Now()
	m.mu.Unlock()
}

// Counter returns the Prometheus counter for op and r.
func (m *ResultMetrics) Counter(op string, r api.Result) prometheus.Counter {
	return m.vec.WithLabelValues(op, r.String(), r.Class().String())
}

// Snapshot returns a copy of the counts and the time of the last update.
func (m *ResultMetrics) Snapshot() (map[OpResult]uint64, time.Time) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[OpResult]uint64, len(m.counts))
	for k, v := range m.counts {
		out[k] = v
	}
	return out, m.updated
}
