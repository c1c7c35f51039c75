package domain

// TimingMode selects the delay strategy for an autonomous line.
type TimingMode string

const (
	// TimingNatural simulates a human noticing the chat and typing: a random
	// pre-delay followed by a length-scaled typing window.
	TimingNatural TimingMode = "natural"
	// TimingManual waits a fixed, author-chosen number of seconds.
	TimingManual TimingMode = "manual"
	// TimingInstant delivers the line with no wait at all.
	TimingInstant TimingMode = "instant"
)

// Participant is one voice in the scripted conversation.
type Participant struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	// Actor marks the performing human. At most one participant per script
	// carries the flag; every other participant is autonomous.
	Actor bool `json:"actor,omitempty" yaml:"actor,omitempty"`
}

// Line is one scripted utterance.
type Line struct {
	ID        string `json:"id" yaml:"id"`
	SpeakerID string `json:"speaker_id" yaml:"speaker_id"`

	// Text is the exact literal string revealed during playback. It may be
	// empty; an empty actor line is immediately submit-eligible.
	Text string `json:"text" yaml:"text"`

	// Timing is meaningful only for autonomous lines. An empty value is
	// normalized to TimingNatural.
	Timing TimingMode `json:"timing,omitempty" yaml:"timing,omitempty"`

	// ManualDelaySeconds is the fixed wait when Timing is TimingManual.
	// Negative values are clamped to zero by the delay model.
	ManualDelaySeconds float64 `json:"manual_delay_seconds,omitempty" yaml:"manual_delay_seconds,omitempty"`
}

// Script is the author-supplied conversation as handed to the engine.
// Normalization snapshots it; mutating a Script after a session started has
// no effect on that session.
type Script struct {
	Title        string        `json:"title" yaml:"title"`
	Participants []Participant `json:"participants" yaml:"participants"`
	Lines        []Line        `json:"lines" yaml:"lines"`
}

// Participant returns the participant with the given ID, if present.
func (s Script) Participant(id string) (Participant, bool) {
	for _, p := range s.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

// ActorID returns the ID of the performing participant, or "" when the
// script is pure autonomous playback.
func (s Script) ActorID() string {
	for _, p := range s.Participants {
		if p.Actor {
			return p.ID
		}
	}
	return ""
}
