// Package timing computes the simulated human cadence of autonomous lines:
// a pre-delay ("noticing the chat") followed by a typing-indicator window.
package timing

import (
	"math/rand/v2"
	"time"

	"github.com/offbook/offbook/pkg/domain"
	"github.com/offbook/offbook/pkg/ports"
)

// Timings is the computed wait profile for one line.
type Timings struct {
	// PreDelay elapses before the typing indicator appears.
	PreDelay time.Duration
	// TypingDuration is how long the indicator stays up before delivery.
	TypingDuration time.Duration
}

// Total is the wall-clock span from scheduling to delivery.
func (t Timings) Total() time.Duration { return t.PreDelay + t.TypingDuration }

// Model maps a line to its wait profile. It is a pure function of the line,
// the config, and the injected randomness source; it never fails. Malformed
// numeric input (negative delays, inverted jitter bounds) is clamped, not
// rejected, since authoring-side validation belongs to the authoring host.
type Model struct {
	cfg domain.TimingConfig
	rng ports.Rand
}

// NewModel creates a delay model. A zero-valued field in cfg falls back to
// its default, except ManualTyping, where zero is honored and only negative
// values are clamped; a nil rng gets a time-seeded source.
func NewModel(cfg domain.TimingConfig, rng ports.Rand) *Model {
	def := domain.DefaultTimingConfig()
	if cfg.NaturalJitterMin <= 0 {
		cfg.NaturalJitterMin = def.NaturalJitterMin
	}
	if cfg.NaturalJitterMax <= 0 {
		cfg.NaturalJitterMax = def.NaturalJitterMax
	}
	if cfg.NaturalJitterMax < cfg.NaturalJitterMin {
		cfg.NaturalJitterMax = cfg.NaturalJitterMin
	}
	if cfg.PerChar <= 0 {
		cfg.PerChar = def.PerChar
	}
	if cfg.MinTyping <= 0 {
		cfg.MinTyping = def.MinTyping
	}
	if cfg.MaxNaturalTyping <= 0 {
		cfg.MaxNaturalTyping = def.MaxNaturalTyping
	}
	if cfg.MaxNaturalTyping < cfg.MinTyping {
		cfg.MaxNaturalTyping = cfg.MinTyping
	}
	if cfg.ManualTyping < 0 {
		cfg.ManualTyping = def.ManualTyping
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Model{cfg: cfg, rng: rng}
}

// Config returns the effective (clamped) configuration.
func (m *Model) Config() domain.TimingConfig { return m.cfg }

// Timings computes the wait profile for a line according to its timing mode.
// Actor lines never reach the model; the scheduler suspends on them instead.
func (m *Model) Timings(line domain.Line) Timings {
	switch line.Timing {
	case domain.TimingInstant:
		return Timings{}
	case domain.TimingManual:
		secs := line.ManualDelaySeconds
		if secs < 0 {
			secs = 0
		}
		return Timings{
			PreDelay:       time.Duration(secs * float64(time.Second)),
			TypingDuration: m.cfg.ManualTyping,
		}
	default:
		return Timings{
			PreDelay:       m.jitter(),
			TypingDuration: m.typingWindow(line.Text),
		}
	}
}

// jitter draws a uniform pre-delay from the configured bounds.
func (m *Model) jitter() time.Duration {
	span := m.cfg.NaturalJitterMax - m.cfg.NaturalJitterMin
	if span <= 0 {
		return m.cfg.NaturalJitterMin
	}
	return m.cfg.NaturalJitterMin + time.Duration(m.rng.IntN(int(span)+1))
}

// typingWindow scales with text length, floored and capped.
func (m *Model) typingWindow(text string) time.Duration {
	d := time.Duration(len([]rune(text))) * m.cfg.PerChar
	if d < m.cfg.MinTyping {
		d = m.cfg.MinTyping
	}
	if d > m.cfg.MaxNaturalTyping {
		d = m.cfg.MaxNaturalTyping
	}
	return d
}
