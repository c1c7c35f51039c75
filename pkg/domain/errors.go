package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyScript is returned by normalization when a script has no lines.
var ErrEmptyScript = errors.New("script has no lines")

// ErrAmbiguousActor is returned by normalization when more than one
// participant is flagged as the performer.
var ErrAmbiguousActor = errors.New("script flags more than one participant as actor")

// ErrInputAlreadyActive indicates the host re-entered forced typing while a
// line was still pending. This is host misuse; it is surfaced, not recovered.
var ErrInputAlreadyActive = errors.New("forced input already active")

// ErrNoTimeline is returned when a lifecycle operation needs a loaded
// timeline and none is present.
var ErrNoTimeline = errors.New("no timeline loaded")

// ErrRunNotFound is returned when a run ID cannot be found in a store.
var ErrRunNotFound = errors.New("run not found")

// UnknownSpeakerError reports a line whose speaker is not in the roster.
type UnknownSpeakerError struct {
	LineID    string
	SpeakerID string
}

func (e *UnknownSpeakerError) Error() string {
	return fmt.Sprintf("line %q references unknown speaker %q", e.LineID, e.SpeakerID)
}
