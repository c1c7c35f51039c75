// Package metrics exposes the engine's diagnostic counters. Absorbed key
// signals are not errors, so they surface here instead of in the event
// stream; the serve command publishes the registry at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the playback counters. A nil *Metrics is valid and drops
// every observation, so the engine never branches on instrumentation.
type Metrics struct {
	sessionsStarted prometheus.Counter
	sessionsReset   prometheus.Counter
	linesDelivered  prometheus.Counter
	signalsAbsorbed *prometheus.CounterVec
}

// New registers the playback counters with reg and returns the bundle.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		sessionsStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "offbook",
			Name:      "sessions_started_total",
			Help:      "Playback sessions started.",
		}),
		sessionsReset: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "offbook",
			Name:      "sessions_reset_total",
			Help:      "Playback sessions cancelled or restarted.",
		}),
		linesDelivered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "offbook",
			Name:      "lines_delivered_total",
			Help:      "Script lines revealed, autonomous and actor-typed alike.",
		}),
		signalsAbsorbed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "offbook",
			Name:      "key_signals_absorbed_total",
			Help:      "Key signals consumed without effect, by reason.",
		}, []string{"reason"}),
	}
}

// SessionStarted counts a successful Start.
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessionsStarted.Inc()
}

// SessionReset counts a cancel or restart.
func (m *Metrics) SessionReset() {
	if m == nil {
		return
	}
	m.sessionsReset.Inc()
}

// LineDelivered counts one revealed line.
func (m *Metrics) LineDelivered() {
	if m == nil {
		return
	}
	m.linesDelivered.Inc()
}

// SignalAbsorbed counts a no-op key signal.
func (m *Metrics) SignalAbsorbed(reason string) {
	if m == nil {
		return
	}
	m.signalsAbsorbed.WithLabelValues(reason).Inc()
}
