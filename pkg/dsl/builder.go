package dsl

import (
	"fmt"

	"github.com/offbook/offbook/internal/timeline"
	"github.com/offbook/offbook/pkg/domain"
)

// Scene manages the script construction.
type Scene struct {
	title        string
	participants []domain.Participant
	lines        []*LineBuilder
}

// NewScene creates a new script builder.
func NewScene(title string) *Scene {
	return &Scene{title: title}
}

// Participant adds an autonomous participant. Adding an existing ID again
// updates its name.
func (s *Scene) Participant(id, name string) *Scene {
	return s.addParticipant(id, name, false)
}

// Actor adds the performer. A playable scene has at most one.
func (s *Scene) Actor(id, name string) *Scene {
	return s.addParticipant(id, name, true)
}

func (s *Scene) addParticipant(id, name string, actor bool) *Scene {
	for i, p := range s.participants {
		if p.ID == id {
			s.participants[i].Name = name
			s.participants[i].Actor = actor
			return s
		}
	}
	s.participants = append(s.participants, domain.Participant{ID: id, Name: name, Actor: actor})
	return s
}

// Say appends a line delivered on the natural cadence.
func (s *Scene) Say(speakerID, text string) *LineBuilder {
	return s.addLine(domain.Line{
		SpeakerID: speakerID,
		Text:      text,
		Timing:    domain.TimingNatural,
	})
}

// SayAfter appends a line delivered a fixed number of seconds after the
// previous one.
func (s *Scene) SayAfter(speakerID, text string, seconds float64) *LineBuilder {
	return s.addLine(domain.Line{
		SpeakerID:          speakerID,
		Text:               text,
		Timing:             domain.TimingManual,
		ManualDelaySeconds: seconds,
	})
}

// SayInstant appends a line delivered immediately, with no typing indicator.
func (s *Scene) SayInstant(speakerID, text string) *LineBuilder {
	return s.addLine(domain.Line{
		SpeakerID: speakerID,
		Text:      text,
		Timing:    domain.TimingInstant,
	})
}

func (s *Scene) addLine(line domain.Line) *LineBuilder {
	lb := &LineBuilder{line: line}
	s.lines = append(s.lines, lb)
	return lb
}

// Build compiles the scene into a script. Lines without an explicit ID get
// sequential ones. The script is validated the same way playback would:
// unknown speakers, an ambiguous performer, or an empty scene fail here
// instead of at Start.
func (s *Scene) Build() (domain.Script, error) {
	script := domain.Script{
		Title:        s.title,
		Participants: append([]domain.Participant(nil), s.participants...),
		Lines:        make([]domain.Line, 0, len(s.lines)),
	}

	for i, lb := range s.lines {
		line := lb.line
		if line.ID == "" {
			line.ID = fmt.Sprintf("line-%03d", i+1)
		}
		script.Lines = append(script.Lines, line)
	}

	if _, err := timeline.Normalize(script); err != nil {
		return domain.Script{}, fmt.Errorf("failed to build scene: %w", err)
	}

	return script, nil
}

// LineBuilder provides a fluent API for configuring a line.
type LineBuilder struct {
	line domain.Line
}

// ID sets an explicit line ID, used in run records and diagrams.
func (l *LineBuilder) ID(id string) *LineBuilder {
	l.line.ID = id
	return l
}
