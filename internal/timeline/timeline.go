// Package timeline normalizes an authored script into the immutable playback
// plan the scheduler walks. Indices assigned here are the sole addressing
// scheme used during playback; nothing looks lines up by ID once a session
// is running.
package timeline

import (
	"github.com/offbook/offbook/pkg/domain"
)

// Timeline is the ordered, 0-indexed, immutable sequence of lines for one
// playback session, snapshotted at normalization time. Mutating the source
// script afterwards has no effect on the timeline.
type Timeline struct {
	title        string
	lines        []domain.Line
	participants map[string]domain.Participant
	actorID      string
	actorIdx     []int
	autoIdx      []int
}

// Normalize validates a script and produces its playback plan.
//
// It rejects an empty script (domain.ErrEmptyScript), a roster with more
// than one performer (domain.ErrAmbiguousActor), and any line whose speaker
// is not in the roster (*domain.UnknownSpeakerError). A script with no actor
// lines at all is valid; that is pure autonomous playback.
func Normalize(script domain.Script) (*Timeline, error) {
	if len(script.Lines) == 0 {
		return nil, domain.ErrEmptyScript
	}

	roster := make(map[string]domain.Participant, len(script.Participants))
	actorID := ""
	for _, p := range script.Participants {
		if p.Actor {
			if actorID != "" {
				return nil, domain.ErrAmbiguousActor
			}
			actorID = p.ID
		}
		roster[p.ID] = p
	}

	t := &Timeline{
		title:        script.Title,
		lines:        make([]domain.Line, len(script.Lines)),
		participants: roster,
		actorID:      actorID,
	}
	copy(t.lines, script.Lines)

	for i := range t.lines {
		line := &t.lines[i]
		if _, ok := roster[line.SpeakerID]; !ok {
			return nil, &domain.UnknownSpeakerError{LineID: line.ID, SpeakerID: line.SpeakerID}
		}
		if line.Timing == "" {
			line.Timing = domain.TimingNatural
		}
		if line.SpeakerID == actorID && actorID != "" {
			t.actorIdx = append(t.actorIdx, i)
		} else {
			t.autoIdx = append(t.autoIdx, i)
		}
	}

	return t, nil
}

// Title returns the script title.
func (t *Timeline) Title() string { return t.title }

// Len returns the number of lines in the plan.
func (t *Timeline) Len() int { return len(t.lines) }

// Line returns the line at index i. The index must be in [0, Len()).
func (t *Timeline) Line(i int) domain.Line { return t.lines[i] }

// Lines returns a copy of the full plan, in authorial order.
func (t *Timeline) Lines() []domain.Line {
	out := make([]domain.Line, len(t.lines))
	copy(out, t.lines)
	return out
}

// IsActorLine reports whether the line at index i belongs to the performer.
func (t *Timeline) IsActorLine(i int) bool {
	return t.actorID != "" && t.lines[i].SpeakerID == t.actorID
}

// ActorID returns the performer's participant ID, or "" for pure autonomous
// playback.
func (t *Timeline) ActorID() string { return t.actorID }

// ActorLineIndices returns the indices of performer-owned lines.
func (t *Timeline) ActorLineIndices() []int {
	out := make([]int, len(t.actorIdx))
	copy(out, t.actorIdx)
	return out
}

// AutonomousLineIndices returns the indices of scheduler-owned lines.
func (t *Timeline) AutonomousLineIndices() []int {
	out := make([]int, len(t.autoIdx))
	copy(out, t.autoIdx)
	return out
}

// Participant resolves a speaker ID against the snapshotted roster.
func (t *Timeline) Participant(id string) (domain.Participant, bool) {
	p, ok := t.participants[id]
	return p, ok
}
