// Package playback drives a normalized timeline through delivery: it owns
// the cursor, schedules the typing/delivery phases of autonomous lines,
// suspends on performer lines, and emits the event stream hosts render.
//
// All session state is owned exclusively by the Session and mutated only
// under its lock; timers and key signals are serialized through it. Every
// scheduled callback carries the epoch it was created in and self-discards
// when a reset has bumped the epoch since, so cancellation is total even if
// a timer was already due when it was stopped.
package playback

import (
	"log/slog"
	"sync"
	"time"

	"github.com/offbook/offbook/internal/capture"
	"github.com/offbook/offbook/internal/clock"
	"github.com/offbook/offbook/internal/logging"
	"github.com/offbook/offbook/internal/metrics"
	"github.com/offbook/offbook/internal/timeline"
	"github.com/offbook/offbook/internal/timing"
	"github.com/offbook/offbook/pkg/domain"
	"github.com/offbook/offbook/pkg/ports"
)

// Session is the playback state machine. The zero value is not usable;
// construct with NewSession.
type Session struct {
	mu sync.Mutex

	clk     ports.Clock
	delays  *timing.Model
	capture *capture.Capture
	logger  *slog.Logger
	metrics *metrics.Metrics

	timeline  *timeline.Timeline
	status    domain.SessionStatus
	cursor    int
	delivered []domain.Line

	// announced tracks whether typing-started was emitted for the line at
	// cursor, so delivery can never precede its own typing indicator even
	// when both phase timers share a deadline.
	announced bool

	// epoch increments on every reset; timer callbacks from an older epoch
	// discard themselves.
	epoch    uint64
	timers   map[uint64]ports.Timer
	timerSeq uint64

	subs    map[int]func(domain.Event)
	nextSub int
}

// Option configures a Session.
type Option func(*Session)

// WithClock injects the scheduling clock. Tests pass a virtual clock.
func WithClock(c ports.Clock) Option {
	return func(s *Session) { s.clk = c }
}

// WithTimingModel injects the delay model for autonomous lines.
func WithTimingModel(m *timing.Model) Option {
	return func(s *Session) { s.delays = m }
}

// WithLogger sets a structured logger for state transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithMetrics attaches diagnostic counters. Nil is valid.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// NewSession creates an idle session.
func NewSession(opts ...Option) *Session {
	s := &Session{
		capture: capture.New(),
		status:  domain.StatusIdle,
		timers:  make(map[uint64]ports.Timer),
		subs:    make(map[int]func(domain.Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clk == nil {
		s.clk = clock.System()
	}
	if s.delays == nil {
		s.delays = timing.NewModel(domain.TimingConfig{}, nil)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	return s
}

// Subscribe registers fn for every subsequent playback event and returns its
// unsubscribe function. Events are delivered synchronously, in emission
// order; fn must not call back into the session.
func (s *Session) Subscribe(fn func(domain.Event)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Start loads a timeline and begins playback at index 0. Any session already
// in progress is torn down first: its timers are stopped and cleared, its
// pending capture abandoned, and none of its events will be observed again.
func (s *Session) Start(t *timeline.Timeline) error {
	if t == nil {
		return domain.ErrNoTimeline
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	s.timeline = t
	s.cursor = 0
	s.delivered = nil

	s.logger.Debug("session started", "title", t.Title(), "lines", t.Len())
	s.metrics.SessionStarted()
	s.evaluateLocked()
	return nil
}

// Restart replays the same timeline from index 0 without re-normalization.
// It emits a session-reset, then exactly the event sequence a fresh Start of
// this timeline would produce.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timeline == nil {
		return domain.ErrNoTimeline
	}

	s.resetLocked()
	s.cursor = 0
	s.delivered = nil

	s.logger.Debug("session restarted", "title", s.timeline.Title())
	s.metrics.SessionReset()
	s.emitLocked(domain.NewSessionReset(s.clk.Now()))
	s.evaluateLocked()
	return nil
}

// Cancel tears the session down and returns it to idle, emitting a
// session-reset. After Cancel returns, no further event is emitted for the
// cancelled session, even for timers that were already due. Calling Cancel
// on an idle session is a no-op.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timeline == nil {
		return
	}

	s.resetLocked()
	s.timeline = nil
	s.cursor = 0
	s.delivered = nil

	s.logger.Debug("session cancelled")
	s.metrics.SessionReset()
	s.emitLocked(domain.NewSessionReset(s.clk.Now()))
}

// OnKeySignal feeds one classified key press into the forced-typing path.
// Signals are consumed in arrival order; outside an actor line they are
// absorbed and counted, never queued.
func (s *Session) OnKeySignal(sig domain.KeySignal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.capture.Apply(sig)
	switch out.Kind {
	case capture.OutcomeSubmitted:
		line := s.timeline.Line(s.cursor)
		s.deliverLocked(line)
		s.evaluateLocked()
	case capture.OutcomeAbsorbed:
		s.metrics.SignalAbsorbed(string(out.Reason))
	}
}

// Status returns the current session status.
func (s *Session) Status() domain.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Delivered returns a copy of the lines revealed so far, in delivery order.
func (s *Session) Delivered() []domain.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Line, len(s.delivered))
	copy(out, s.delivered)
	return out
}

// Preview returns the revealed prefix of the pending actor line and whether
// forced typing is currently active.
func (s *Session) Preview() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.capture.Active() {
		return "", false
	}
	return s.capture.Displayed(), true
}

// Timeline returns the timeline loaded into the session, if any.
func (s *Session) Timeline() *timeline.Timeline {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeline
}

// resetLocked invalidates all outstanding work: bumps the epoch, stops and
// clears every tracked timer, and abandons any pending capture.
func (s *Session) resetLocked() {
	s.epoch++
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = make(map[uint64]ports.Timer)
	s.capture.Cancel()
	s.status = domain.StatusIdle
	s.announced = false
}

// evaluateLocked looks at the line under the cursor and either schedules its
// autonomous phases or suspends for actor input. Lines are evaluated
// strictly one at a time; the next line is never touched until the current
// one delivered.
func (s *Session) evaluateLocked() {
	if s.cursor >= s.timeline.Len() {
		s.status = domain.StatusComplete
		s.logger.Debug("session complete", "delivered", len(s.delivered))
		s.emitLocked(domain.NewSessionCompleted(s.clk.Now()))
		return
	}

	line := s.timeline.Line(s.cursor)
	s.announced = false

	if s.timeline.IsActorLine(s.cursor) {
		if err := s.capture.Begin(line.Text); err != nil {
			// resetLocked cancelled any prior capture, so this is unreachable;
			// log rather than crash the performance if it ever trips.
			s.logger.Warn("capture begin failed", "err", err, "line", line.ID)
			return
		}
		s.status = domain.StatusAwaitingActor
		s.emitLocked(domain.NewAwaitingActorInput(s.clk.Now(), line))
		return
	}

	s.status = domain.StatusDelivering
	tm := s.delays.Timings(line)
	epoch := s.epoch
	idx := s.cursor

	s.scheduleLocked(tm.PreDelay, func() { s.typingPhase(epoch, idx) })
	s.scheduleLocked(tm.Total(), func() { s.deliveryPhase(epoch, idx) })
}

// scheduleLocked arms a tracked timer for the current epoch. A timer drops
// its own handle when it fires, so only armed timers stay tracked; reset
// stops and clears whatever remains.
func (s *Session) scheduleLocked(d time.Duration, fn func()) {
	id := s.timerSeq
	s.timerSeq++
	s.timers[id] = s.clk.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()
		fn()
	})
}

// typingPhase announces the typing indicator for the line at idx, unless the
// session has moved on.
func (s *Session) typingPhase(epoch uint64, idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch || s.cursor != idx || s.announced {
		return
	}
	s.announced = true
	s.emitLocked(domain.NewTypingStarted(s.clk.Now(), s.timeline.Line(idx).SpeakerID))
}

// deliveryPhase delivers the line at idx, unless the session has moved on.
// If the two phase timers fired in the same instant and delivery won the
// race, the indicator is announced here first so typing-started always
// precedes line-delivered for the same line.
func (s *Session) deliveryPhase(epoch uint64, idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch || s.cursor != idx {
		return
	}
	line := s.timeline.Line(idx)
	if !s.announced {
		s.announced = true
		s.emitLocked(domain.NewTypingStarted(s.clk.Now(), line.SpeakerID))
	}
	s.emitLocked(domain.NewTypingStopped(s.clk.Now(), line.SpeakerID))
	s.deliverLocked(line)
	s.evaluateLocked()
}

// deliverLocked appends the line to the transcript, emits line-delivered,
// and advances the cursor. deliveredLines is append-only; entries are never
// mutated after the fact.
func (s *Session) deliverLocked(line domain.Line) {
	s.delivered = append(s.delivered, line)
	s.cursor++
	s.metrics.LineDelivered()
	s.logger.Debug("line delivered", "line", line.ID, "speaker", line.SpeakerID)
	s.emitLocked(domain.NewLineDelivered(s.clk.Now(), line))
}

// emitLocked fans an event out to all subscribers, synchronously.
func (s *Session) emitLocked(ev domain.Event) {
	for _, fn := range s.subs {
		fn(ev)
	}
}
