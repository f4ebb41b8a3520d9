package host

import "github.com/prometheus/client_golang/prometheus"

// Sink call kinds, used as the "kind" metric label.
const (
	kindContentType    = "content_type"
	kindFeatureRemoval = "feature_removal"
	kindTaxonomy       = "taxonomy"
	kindPanel          = "panel"
)

// metrics counts the calls the runtime accepts and rejects.
type metrics struct {
	accepted *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

// newMetrics creates the runtime counters and registers them with reg
// when reg is not nil.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		accepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "typereg",
			Subsystem: "host",
			Name:      "calls_accepted_total",
			Help:      "Registration calls accepted by the host runtime.",
		}, []string{"kind"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "typereg",
			Subsystem: "host",
			Name:      "calls_rejected_total",
			Help:      "Registration calls rejected by the host runtime.",
		}, []string{"kind"}),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.accepted, m.rejected} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) accept(kind string) {
	m.accepted.WithLabelValues(kind).Inc()
}

func (m *metrics) reject(kind string) {
	m.rejected.WithLabelValues(kind).Inc()
}
