package graph

import (
	"fmt"
	"strings"

	"github.com/offbook/offbook/pkg/domain"
)

// Overlay contains playback state to visualize on the diagram.
type Overlay struct {
	DeliveredLineIDs []string
	CurrentLineID    string
}

// GenerateMermaid produces a Mermaid sequence diagram from a script.
// Autonomous lines are plain messages; the performer's lines are marked so
// the crew can see at a glance where playback hands over to the actor.
// Manual and instant timing is annotated on the message.
// It also applies overlay notes (delivered/current) if provided.
func GenerateMermaid(script domain.Script, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("sequenceDiagram\n")

	for _, p := range script.Participants {
		name := p.Name
		if name == "" {
			name = p.ID
		}
		if p.Actor {
			sb.WriteString(fmt.Sprintf("    actor %s as %s\n", sanitizeMermaidID(p.ID), escapeMermaidLabel(name)))
		} else {
			sb.WriteString(fmt.Sprintf("    participant %s as %s\n", sanitizeMermaidID(p.ID), escapeMermaidLabel(name)))
		}
	}

	delivered := make(map[string]bool)
	if overlay != nil {
		for _, id := range overlay.DeliveredLineIDs {
			delivered[id] = true
		}
	}

	target := "audience"
	sb.WriteString(fmt.Sprintf("    participant %s as (screen)\n", target))

	for _, line := range script.Lines {
		from := sanitizeMermaidID(line.SpeakerID)
		text := escapeMermaidLabel(line.Text)

		switch line.Timing {
		case domain.TimingManual:
			text = fmt.Sprintf("%s (after %.1fs)", text, line.ManualDelaySeconds)
		case domain.TimingInstant:
			text = text + " (instant)"
		}

		arrow := "->>"
		if isActorLine(script, line) {
			// Dotted arrow: revealed by forced typing, not by the scheduler.
			arrow = "-->>"
		}
		sb.WriteString(fmt.Sprintf("    %s%s%s: %s\n", from, arrow, target, text))

		if overlay != nil {
			switch {
			case overlay.CurrentLineID == line.ID:
				sb.WriteString(fmt.Sprintf("    note over %s: current\n", from))
			case delivered[line.ID]:
				sb.WriteString(fmt.Sprintf("    note over %s: delivered\n", from))
			}
		}
	}

	return sb.String()
}

func isActorLine(script domain.Script, line domain.Line) bool {
	p, ok := script.Participant(line.SpeakerID)
	return ok && p.Actor
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

func escapeMermaidLabel(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, ";", ",")
	s = strings.ReplaceAll(s, ":", " -")
	return s
}
