package domain

import "time"

// EventKind defines the category of a playback event.
type EventKind string

const (
	EventTypingStarted EventKind = "typing_started"
	EventTypingStopped EventKind = "typing_stopped"
	EventLineDelivered EventKind = "line_delivered"
	EventAwaitingActor EventKind = "awaiting_actor_input"
	EventCompleted     EventKind = "session_completed"
	EventReset         EventKind = "session_reset"
)

// Event is a playback notification delivered to subscribers. Hosts render
// events and never feed state back, except through the key-signal input path.
type Event interface {
	EventKind() EventKind
	OccurredAt() time.Time
}

// Base contains the fields common to all playback events.
type Base struct {
	Kind EventKind `json:"kind"`
	At   time.Time `json:"at"`
}

// NewBase creates the common event header.
func NewBase(kind EventKind, at time.Time) Base { return Base{Kind: kind, At: at} }

// EventKind returns the event category.
func (b Base) EventKind() EventKind { return b.Kind }

// OccurredAt returns the emission time.
func (b Base) OccurredAt() time.Time { return b.At }

// TypingStarted announces that an autonomous participant began "typing".
type TypingStarted struct {
	Base
	SpeakerID string `json:"speaker_id"`
}

// NewTypingStarted creates a typing-started event.
func NewTypingStarted(at time.Time, speakerID string) TypingStarted {
	return TypingStarted{Base: NewBase(EventTypingStarted, at), SpeakerID: speakerID}
}

// TypingStopped announces that the typing indicator for a participant ended.
// It always precedes the LineDelivered event for the same autonomous line.
type TypingStopped struct {
	Base
	SpeakerID string `json:"speaker_id"`
}

// NewTypingStopped creates a typing-stopped event.
func NewTypingStopped(at time.Time, speakerID string) TypingStopped {
	return TypingStopped{Base: NewBase(EventTypingStopped, at), SpeakerID: speakerID}
}

// LineDelivered carries a line that was just revealed, either by the
// scheduler or by an actor submit.
type LineDelivered struct {
	Base
	Line Line `json:"line"`
}

// NewLineDelivered creates a line-delivered event.
func NewLineDelivered(at time.Time, line Line) LineDelivered {
	return LineDelivered{Base: NewBase(EventLineDelivered, at), Line: line}
}

// AwaitingActorInput announces that playback is suspended until the performer
// types the pending line through the forced-input path.
type AwaitingActorInput struct {
	Base
	Line Line `json:"line"`
}

// NewAwaitingActorInput creates an awaiting-actor-input event.
func NewAwaitingActorInput(at time.Time, line Line) AwaitingActorInput {
	return AwaitingActorInput{Base: NewBase(EventAwaitingActor, at), Line: line}
}

// SessionCompleted marks that every line of the timeline was delivered.
type SessionCompleted struct {
	Base
}

// NewSessionCompleted creates a session-completed event.
func NewSessionCompleted(at time.Time) SessionCompleted {
	return SessionCompleted{Base: NewBase(EventCompleted, at)}
}

// SessionReset marks a restart, cancel, or exit. No event from before the
// reset's epoch will be observed after it.
type SessionReset struct {
	Base
}

// NewSessionReset creates a session-reset event.
func NewSessionReset(at time.Time) SessionReset {
	return SessionReset{Base: NewBase(EventReset, at)}
}
