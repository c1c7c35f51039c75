// Package capture implements forced typing: a per-line state reducer that
// maps arbitrary key-press signals onto a fixed target string. The identity
// of a printable key is discarded; only its category advances, erases, or
// submits the pending text. The host must suppress its input surface's
// native insertion so the target stays the single source of truth.
package capture

import (
	"github.com/offbook/offbook/pkg/domain"
)

// OutcomeKind classifies what a signal did to the pending line.
type OutcomeKind int

const (
	// OutcomeAbsorbed means the signal was consumed without effect
	// (erase at zero, printable at full length, premature submit).
	OutcomeAbsorbed OutcomeKind = iota
	// OutcomeAdvanced means one more character of the target is revealed.
	OutcomeAdvanced
	// OutcomeErased means the revealed prefix shrank by one character.
	OutcomeErased
	// OutcomeSubmitted means the line completed; Outcome.Text carries the
	// verbatim target.
	OutcomeSubmitted
)

// AbsorbReason names why a signal was absorbed, for diagnostic counters.
// Absorbed signals are deliberate no-op transitions, not errors.
type AbsorbReason string

const (
	AbsorbNone         AbsorbReason = ""
	AbsorbInactive     AbsorbReason = "inactive"
	AbsorbAtStart      AbsorbReason = "erase_at_start"
	AbsorbAtFullLength AbsorbReason = "printable_at_full_length"
	AbsorbIncomplete   AbsorbReason = "premature_submit"
	AbsorbUnmapped     AbsorbReason = "unmapped_signal"
)

// Outcome is the result of applying one key signal.
type Outcome struct {
	Kind   OutcomeKind
	Reason AbsorbReason
	// Text is the full target, set only on OutcomeSubmitted. It is always
	// the literal scripted text, never anything the performer could supply.
	Text string
}

// Capture is the per-line forced-typing state. It has no internal
// concurrency; signals are reduced strictly in arrival order by whoever owns
// the instance. State is destroyed and recreated per line via Begin/Cancel.
type Capture struct {
	target   []rune
	revealed int
	active   bool
}

// New returns an inactive capture.
func New() *Capture { return &Capture{} }

// Begin arms the capture for a new target line, resetting the revealed
// length to zero. Calling Begin while a line is still pending returns
// domain.ErrInputAlreadyActive; two forced-typing sessions must never
// overlap.
func (c *Capture) Begin(target string) error {
	if c.active {
		return domain.ErrInputAlreadyActive
	}
	c.target = []rune(target)
	c.revealed = 0
	c.active = true
	return nil
}

// Active reports whether a line is pending.
func (c *Capture) Active() bool { return c.active }

// Revealed returns how many characters of the target are currently shown.
func (c *Capture) Revealed() int { return c.revealed }

// Displayed returns the revealed prefix of the target.
func (c *Capture) Displayed() string { return string(c.target[:c.revealed]) }

// Target returns the full target text of the pending line.
func (c *Capture) Target() string { return string(c.target) }

// Apply reduces one key signal. It is total: every signal yields an Outcome
// and is treated as consumed, whatever its category.
func (c *Capture) Apply(sig domain.KeySignal) Outcome {
	if !c.active {
		return Outcome{Kind: OutcomeAbsorbed, Reason: AbsorbInactive}
	}

	switch sig {
	case domain.SignalPrintable:
		if c.revealed >= len(c.target) {
			return Outcome{Kind: OutcomeAbsorbed, Reason: AbsorbAtFullLength}
		}
		c.revealed++
		return Outcome{Kind: OutcomeAdvanced}

	case domain.SignalErase:
		if c.revealed == 0 {
			return Outcome{Kind: OutcomeAbsorbed, Reason: AbsorbAtStart}
		}
		c.revealed--
		return Outcome{Kind: OutcomeErased}

	case domain.SignalSubmit:
		if c.revealed != len(c.target) {
			return Outcome{Kind: OutcomeAbsorbed, Reason: AbsorbIncomplete}
		}
		return Outcome{Kind: OutcomeSubmitted, Text: c.complete()}

	default:
		return Outcome{Kind: OutcomeAbsorbed, Reason: AbsorbUnmapped}
	}
}

// Cancel abandons the pending line without completion. Used on session
// restart and exit. Safe to call when inactive.
func (c *Capture) Cancel() {
	c.target = nil
	c.revealed = 0
	c.active = false
}

// complete finalizes the line, returning the literal target text.
func (c *Capture) complete() string {
	text := string(c.target)
	c.Cancel()
	return text
}
