// Package tui implements the on-camera chat surface using Bubble Tea. It is
// a pure view over the playback event stream: the only state it feeds back
// into the engine is classified key signals and the restart/cancel controls.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/offbook/offbook/pkg/domain"
)

// Engine defines the slice of the playback session the screen drives.
type Engine interface {
	Start(script domain.Script) error
	Restart() error
	Cancel()
	OnKeySignal(sig domain.KeySignal)
	Subscribe(fn func(domain.Event)) func()
	Preview() (string, bool)
	Status() domain.SessionStatus
}

// eventMsg wraps a playback event for the Bubble Tea update loop.
type eventMsg struct {
	event domain.Event
}

// startFailedMsg reports that the session refused the script.
type startFailedMsg struct {
	err error
}

// bubble is one rendered message in the transcript.
type bubble struct {
	speaker string
	text    string
	actor   bool
}

// Model is the Bubble Tea model for a performance run.
type Model struct {
	engine Engine
	script domain.Script

	events      chan domain.Event
	unsubscribe func()

	spin     spinner.Model
	vp       viewport.Model
	ready    bool
	width    int
	height   int

	transcript []bubble
	typingBy   string
	awaiting   *domain.Line
	done       bool
	err        error
}

// NewModel creates the performance screen for a loaded script and wires it
// to the engine's event stream.
func NewModel(engine Engine, script domain.Script) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(dimColor))

	m := Model{
		engine: engine,
		script: script,
		events: make(chan domain.Event, 64),
		spin:   sp,
	}
	m.unsubscribe = engine.Subscribe(func(ev domain.Event) {
		// Drop rather than block: the engine must never stall on the view.
		select {
		case m.events <- ev:
		default:
		}
	})
	return m
}

// Init starts the playback session, the spinner, and the event pump. The
// subscription from NewModel is already in place, so events emitted
// synchronously inside Start (an actor-owned or instant first line) reach
// the screen.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startSession, m.spin.Tick, m.waitForEvent())
}

func (m Model) startSession() tea.Msg {
	if err := m.engine.Start(m.script); err != nil {
		return startFailedMsg{err: err}
	}
	return nil
}

// waitForEvent blocks on the next playback event.
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return eventMsg{event: <-m.events}
	}
}

// Update handles key presses, playback events, and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 6
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = vpHeight
		}
		m.vp.SetContent(m.renderTranscript())
		m.vp.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.engine.Cancel()
			if m.unsubscribe != nil {
				m.unsubscribe()
			}
			return m, tea.Quit
		case tea.KeyCtrlR:
			// Restart with nothing loaded is a no-op on screen.
			_ = m.engine.Restart()
			return m, nil
		}
		m.engine.OnKeySignal(SignalForKey(msg))
		return m, nil

	case eventMsg:
		m.applyEvent(msg.event)
		if m.ready {
			m.vp.SetContent(m.renderTranscript())
			m.vp.GotoBottom()
		}
		return m, m.waitForEvent()

	case startFailedMsg:
		m.err = msg.err
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyEvent folds one playback event into the view state.
func (m *Model) applyEvent(ev domain.Event) {
	switch ev := ev.(type) {
	case domain.TypingStarted:
		m.typingBy = m.speakerName(ev.SpeakerID)
	case domain.TypingStopped:
		m.typingBy = ""
	case domain.LineDelivered:
		line := ev.Line
		m.transcript = append(m.transcript, bubble{
			speaker: m.speakerName(line.SpeakerID),
			text:    line.Text,
			actor:   m.isActor(line.SpeakerID),
		})
		m.awaiting = nil
	case domain.AwaitingActorInput:
		line := ev.Line
		m.awaiting = &line
	case domain.SessionCompleted:
		m.done = true
		m.typingBy = ""
		m.awaiting = nil
	case domain.SessionReset:
		m.transcript = nil
		m.typingBy = ""
		m.awaiting = nil
		m.done = false
	}
}

func (m Model) speakerName(id string) string {
	if p, ok := m.script.Participant(id); ok && p.Name != "" {
		return p.Name
	}
	return id
}

func (m Model) isActor(id string) bool {
	p, ok := m.script.Participant(id)
	return ok && p.Actor
}

func (m Model) renderTranscript() string {
	var b strings.Builder
	for _, msg := range m.transcript {
		name := SpeakerStyle.Render(msg.speaker)
		box := BubbleStyle
		if msg.actor {
			name = ActorSpeakerStyle.Render(msg.speaker)
			box = ActorBubbleStyle
		}
		b.WriteString(name + "\n" + box.Render(msg.text) + "\n")
	}
	return b.String()
}

// View renders the full performance screen.
func (m Model) View() string {
	if !m.ready {
		return "loading scene..."
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.script.Title) + "\n")
	b.WriteString(m.vp.View() + "\n")

	switch {
	case m.typingBy != "":
		b.WriteString(TypingStyle.Render(fmt.Sprintf("%s %s is typing...", m.spin.View(), m.typingBy)) + "\n")
	case m.done:
		b.WriteString(CompleteStyle.Render("scene complete") + "\n")
	default:
		b.WriteString("\n")
	}

	if m.awaiting != nil {
		preview, _ := m.engine.Preview()
		b.WriteString(ComposeStyle.Render("> "+preview+"▌") + "\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(HintStyle.Render("type to perform · enter send · ctrl+r restart · esc exit"))
	return b.String()
}

// SignalForKey classifies a terminal key press into an engine key signal.
// Any printable key maps to the same reveal signal; the key's own character
// never reaches the transcript.
func SignalForKey(msg tea.KeyMsg) domain.KeySignal {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		return domain.SignalPrintable
	case tea.KeyBackspace, tea.KeyDelete:
		return domain.SignalErase
	case tea.KeyEnter:
		return domain.SignalSubmit
	default:
		return domain.SignalIgnored
	}
}

// Run starts the performance screen in the alternate screen buffer, begins
// playback once the screen is subscribed, and blocks until the operator
// exits.
func Run(engine Engine, script domain.Script) error {
	p := tea.NewProgram(NewModel(engine, script), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
