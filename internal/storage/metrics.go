package storage

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts filesystem activity of the document services.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	stored            prometheus.Counter
	cleanup           *prometheus.CounterVec
	integrityFailures prometheus.Counter
}

// NewMetrics creates the storage collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		stored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "document_files_stored_total",
			Help: "Total number of document files written to storage.",
		}),
		cleanup: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "document_file_cleanup_total",
				Help: "Best-effort file and folder removals by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		integrityFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "document_integrity_failures_total",
			Help: "Compensating removals that failed and left residual files.",
		}),
	}
	for _, c := range []prometheus.Collector{m.stored, m.cleanup, m.integrityFailures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// FileStored records a successful upload write.
func (m *Metrics) FileStored() {
	if m == nil {
		return
	}
	m.stored.Inc()
}

// IntegrityFailure records a failed compensating action.
func (m *Metrics) IntegrityFailure() {
	if m == nil {
		return
	}
	m.integrityFailures.Inc()
}

// ObserveReport adds every entry of r to the cleanup counter.
func (m *Metrics) ObserveReport(r *CleanupReport) {
	if m == nil || r == nil {
		return
	}
	for _, e := range r.Entries() {
		m.cleanup.WithLabelValues(string(e.Kind), string(e.Outcome)).Inc()
	}
}
