package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the performance screen.
const (
	accentColor = "#818cf8" // Indigo
	actorColor  = "#10B981" // Green
	dimColor    = "#6B7280" // Gray
	alertColor  = "#F59E0B" // Amber
)

// Style variables for consistent rendering of the chat surface.
var (
	// TitleStyle renders the scene title bar.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(accentColor)).
			Bold(true).
			Padding(0, 1)

	// SpeakerStyle renders autonomous participant names.
	SpeakerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(accentColor)).
			Bold(true)

	// ActorSpeakerStyle renders the performer's name above their bubbles.
	ActorSpeakerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(actorColor)).
				Bold(true)

	// BubbleStyle boxes an autonomous message.
	BubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(accentColor)).
			Padding(0, 1)

	// ActorBubbleStyle boxes a message delivered by the performer.
	ActorBubbleStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(actorColor)).
				Padding(0, 1)

	// TypingStyle renders the typing indicator row.
	TypingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor)).
			Italic(true)

	// ComposeStyle renders the forced-typing compose field.
	ComposeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(actorColor))

	// HintStyle renders the key hints in the footer.
	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// CompleteStyle renders the end-of-scene banner.
	CompleteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(alertColor)).
			Bold(true)
)
