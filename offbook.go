package offbook

import (
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/offbook/offbook/internal/logging"
	"github.com/offbook/offbook/internal/metrics"
	"github.com/offbook/offbook/internal/playback"
	"github.com/offbook/offbook/internal/timeline"
	"github.com/offbook/offbook/internal/timing"
	"github.com/offbook/offbook/pkg/domain"
	"github.com/offbook/offbook/pkg/ports"
)

// Version is the release version of the offbook library.
var Version = "0.4.0"

// Session is the high-level entry point for the offbook library. It wraps
// the internal playback engine and provides a simplified API for hosts:
// load a script, subscribe to the event stream, forward key signals.
type Session struct {
	mu     sync.Mutex
	inner  *playback.Session
	script domain.Script
	loaded bool

	logger *slog.Logger
	clk    ports.Clock
	cfg    domain.TimingConfig
	rng    ports.Rand
	reg    prometheus.Registerer
}

// Option defines a functional option for configuring the Session.
type Option func(*Session)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithClock injects the scheduling clock. Tests drive a virtual clock; the
// default is the process wall clock.
func WithClock(c ports.Clock) Option {
	return func(s *Session) { s.clk = c }
}

// WithTimingConfig tunes the simulated cadence of autonomous lines.
func WithTimingConfig(cfg domain.TimingConfig) Option {
	return func(s *Session) { s.cfg = cfg }
}

// WithRand injects the randomness source behind natural-mode jitter, so a
// performance (or a test) can be made reproducible with a fixed seed.
func WithRand(r ports.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithMetricsRegistry registers the engine's diagnostic counters with reg.
func WithMetricsRegistry(reg prometheus.Registerer) Option {
	return func(s *Session) { s.reg = reg }
}

// New initializes a playback session. It is idle until Start is called.
func New(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}

	inner := []playback.Option{
		playback.WithLogger(s.logger),
		playback.WithTimingModel(timing.NewModel(s.cfg, s.rng)),
	}
	if s.clk != nil {
		inner = append(inner, playback.WithClock(s.clk))
	}
	if s.reg != nil {
		inner = append(inner, playback.WithMetrics(metrics.New(s.reg)))
	}

	s.inner = playback.NewSession(inner...)
	return s
}

// Start normalizes the script and begins playback from the first line. The
// script is snapshotted: edits made after Start do not reach the running
// session. Validation failures (empty script, unknown speaker, ambiguous
// actor) are returned before any state changes.
func (s *Session) Start(script domain.Script) error {
	tl, err := timeline.Normalize(script)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.script = snapshotScript(script)
	s.loaded = true
	s.mu.Unlock()

	return s.inner.Start(tl)
}

// Restart replays the snapshot taken at Start from the beginning, without
// re-normalization. Picking up script edits requires Cancel plus Start.
func (s *Session) Restart() error { return s.inner.Restart() }

// Cancel tears down the session and returns it to idle. After Cancel
// returns, no further event is emitted. Safe to call at any time.
func (s *Session) Cancel() { s.inner.Cancel() }

// OnKeySignal feeds one classified key press into the forced-typing path.
func (s *Session) OnKeySignal(sig domain.KeySignal) { s.inner.OnKeySignal(sig) }

// Subscribe registers fn for every subsequent playback event and returns
// its unsubscribe function.
func (s *Session) Subscribe(fn func(domain.Event)) func() { return s.inner.Subscribe(fn) }

// Status returns the current session status.
func (s *Session) Status() domain.SessionStatus { return s.inner.Status() }

// Delivered returns a copy of the lines revealed so far, in delivery order.
func (s *Session) Delivered() []domain.Line { return s.inner.Delivered() }

// Preview returns the revealed prefix of the pending actor line and whether
// forced typing is active. Hosts render this as the compose field.
func (s *Session) Preview() (string, bool) { return s.inner.Preview() }

// Script returns a copy of the script snapshot loaded at Start. The second
// return is false while the session has never been started.
func (s *Session) Script() (domain.Script, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return domain.Script{}, false
	}
	return snapshotScript(s.script), true
}

func snapshotScript(src domain.Script) domain.Script {
	out := src
	out.Participants = make([]domain.Participant, len(src.Participants))
	copy(out.Participants, src.Participants)
	out.Lines = make([]domain.Line, len(src.Lines))
	copy(out.Lines, src.Lines)
	return out
}
