package domain

import "time"

// TimingConfig is the tunable surface of the delay model. The constants
// approximate human cadence; they are configuration, not contract.
type TimingConfig struct {
	// NaturalJitterMin and NaturalJitterMax bound the random "noticing the
	// chat" pre-delay for natural-mode lines.
	NaturalJitterMin time.Duration `json:"natural_jitter_min" yaml:"natural_jitter_min"`
	NaturalJitterMax time.Duration `json:"natural_jitter_max" yaml:"natural_jitter_max"`

	// PerChar is the simulated typing cost per character of line text.
	PerChar time.Duration `json:"per_char" yaml:"per_char"`

	// MinTyping floors the typing window so very short lines still show a
	// believable indicator.
	MinTyping time.Duration `json:"min_typing" yaml:"min_typing"`

	// MaxNaturalTyping caps the typing window so very long lines do not take
	// unbounded real time.
	MaxNaturalTyping time.Duration `json:"max_natural_typing" yaml:"max_natural_typing"`

	// ManualTyping is the short fixed typing window shown after a
	// manual-mode wait elapses.
	ManualTyping time.Duration `json:"manual_typing" yaml:"manual_typing"`
}

// DefaultTimingConfig returns the stock cadence constants.
func DefaultTimingConfig() TimingConfig {
	return TimingConfig{
		NaturalJitterMin: 800 * time.Millisecond,
		NaturalJitterMax: 1500 * time.Millisecond,
		PerChar:          55 * time.Millisecond,
		MinTyping:        600 * time.Millisecond,
		MaxNaturalTyping: 4 * time.Second,
		ManualTyping:     250 * time.Millisecond,
	}
}
