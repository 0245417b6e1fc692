package telemetry

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Sync cycle outcomes used as the outcome label.
const (
	OutcomeReplaced    = "replaced"
	OutcomeUnchanged   = "unchanged"
	OutcomeFetchFailed = "fetch_failed"
)

// SyncMetrics holds the Prometheus collectors for the remote sync loop.
type SyncMetrics struct {
	cycles    *prometheus.CounterVec
	conflicts prometheus.Counter
	pushFails prometheus.Counter
	duration  prometheus.Histogram
	quotes    prometheus.Gauge
}

// NewSyncMetrics creates the sync collectors and registers them with reg.
// Registering twice with the same registry reuses the existing collectors.
func NewSyncMetrics(reg prometheus.Registerer) (*SyncMetrics, error) {
	m := &SyncMetrics{
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quotesync",
			Subsystem: "sync",
			Name:      "cycles_total",
			Help:      "Completed sync cycles by outcome.",
		}, []string{"outcome"}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quotesync",
			Subsystem: "sync",
			Name:      "conflicts_total",
			Help:      "Sync cycles where the remote list replaced the local one.",
		}),
		pushFails: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quotesync",
			Subsystem: "sync",
			Name:      "push_failures_total",
			Help:      "Failed pushes of the local list to the remote endpoint.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quotesync",
			Subsystem: "sync",
			Name:      "duration_seconds",
			Help:      "Duration of sync cycles.",
			Buckets:   prometheus.DefBuckets,
		}),
		quotes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quotesync",
			Subsystem: "store",
			Name:      "quotes",
			Help:      "Number of quotes currently held by the store.",
		}),
	}

	var err error
	m.cycles, err = register(reg, m.cycles)
	if err != nil {
		return nil, err
	}
	if m.conflicts, err = register(reg, m.conflicts); err != nil {
		return nil, err
	}
	if m.pushFails, err = register(reg, m.pushFails); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	if m.quotes, err = register(reg, m.quotes); err != nil {
		return nil, err
	}

	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// CycleFinished records one completed cycle.
func (m *SyncMetrics) CycleFinished(outcome string, d time.Duration) {
	m.cycles.WithLabelValues(outcome).Inc()
	m.duration.Observe(d.Seconds())
	if outcome == OutcomeReplaced {
		m.conflicts.Inc()
	}
}

// PushFailed records a failed push.
func (m *SyncMetrics) PushFailed() {
	m.pushFails.Inc()
}

// StoreSize sets the current number of quotes.
func (m *SyncMetrics) StoreSize(n int) {
	m.quotes.Set(float64(n))
}
