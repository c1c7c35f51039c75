// Package cuesheet renders a script as a formatted cue sheet for table
// reads and on-set reference.
package cuesheet

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/offbook/offbook/pkg/domain"
)

// Markdown builds the cue sheet as plain markdown: title, cast, and the
// numbered lines with their timing annotations.
func Markdown(script domain.Script) string {
	var b strings.Builder

	title := script.Title
	if title == "" {
		title = "Untitled Scene"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	b.WriteString("## Cast\n\n")
	for _, p := range script.Participants {
		name := p.Name
		if name == "" {
			name = p.ID
		}
		if p.Actor {
			fmt.Fprintf(&b, "- **%s** (performer)\n", name)
		} else {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}

	b.WriteString("\n## Lines\n\n")
	for i, line := range script.Lines {
		name := line.SpeakerID
		if p, ok := script.Participant(line.SpeakerID); ok && p.Name != "" {
			name = p.Name
		}
		fmt.Fprintf(&b, "%d. **%s**: %s%s\n", i+1, name, line.Text, timingNote(line, script))
	}

	return b.String()
}

func timingNote(line domain.Line, script domain.Script) string {
	if p, ok := script.Participant(line.SpeakerID); ok && p.Actor {
		return " _(performed live)_"
	}
	switch line.Timing {
	case domain.TimingInstant:
		return " _(instant)_"
	case domain.TimingManual:
		return fmt.Sprintf(" _(after %.1fs)_", line.ManualDelaySeconds)
	default:
		return ""
	}
}

// Render renders the cue sheet for the terminal using glamour. It detects
// the light/dark background automatically.
func Render(script domain.Script) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to initialize renderer: %w", err)
	}
	return r.Render(Markdown(script))
}
