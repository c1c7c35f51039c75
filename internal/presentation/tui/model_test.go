package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offbook/offbook/pkg/domain"
)

type fakeEngine struct {
	signals    []domain.KeySignal
	calls      []string
	startErr   error
	started    int
	restarted  int
	cancelled  int
	preview    string
	active     bool
	subscriber func(domain.Event)
}

func (f *fakeEngine) Start(script domain.Script) error {
	f.calls = append(f.calls, "start")
	f.started++
	return f.startErr
}

func (f *fakeEngine) Restart() error { f.restarted++; return nil }

func (f *fakeEngine) Cancel() { f.cancelled++ }

func (f *fakeEngine) OnKeySignal(sig domain.KeySignal) { f.signals = append(f.signals, sig) }

func (f *fakeEngine) Subscribe(fn func(domain.Event)) func() {
	f.calls = append(f.calls, "subscribe")
	f.subscriber = fn
	return func() { f.subscriber = nil }
}

func (f *fakeEngine) Preview() (string, bool) { return f.preview, f.active }

func (f *fakeEngine) Status() domain.SessionStatus { return domain.StatusIdle }

func testScript() domain.Script {
	return domain.Script{
		Title: "Rooftop Scene",
		Participants: []domain.Participant{
			{ID: "ghost", Name: "Ghost"},
			{ID: "lead", Name: "Lead", Actor: true},
		},
		Lines: []domain.Line{
			{ID: "l1", SpeakerID: "ghost", Text: "you there?"},
			{ID: "l2", SpeakerID: "lead", Text: "always"},
		},
	}
}

func sizedModel(t *testing.T, engine Engine) Model {
	t.Helper()
	m := NewModel(engine, testScript())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestSignalForKey(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want domain.KeySignal
	}{
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, domain.SignalPrintable},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, domain.SignalPrintable},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, domain.SignalErase},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, domain.SignalErase},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, domain.SignalSubmit},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, domain.SignalIgnored},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, domain.SignalIgnored},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SignalForKey(tc.msg))
		})
	}
}

func TestStartSession_SubscribesFirst(t *testing.T) {
	engine := &fakeEngine{}
	m := NewModel(engine, testScript())

	msg := m.startSession()

	// An actor-owned or instant first line emits during Start; the screen
	// must already be listening by then.
	assert.Equal(t, []string{"subscribe", "start"}, engine.calls)
	assert.Nil(t, msg)
}

func TestStartSession_FailureQuitsWithError(t *testing.T) {
	engine := &fakeEngine{startErr: domain.ErrEmptyScript}
	m := sizedModel(t, engine)

	msg := m.startSession()
	failed, ok := msg.(startFailedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, failed.err, domain.ErrEmptyScript)

	updated, cmd := m.Update(msg)
	m = updated.(Model)
	assert.ErrorIs(t, m.err, domain.ErrEmptyScript)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestEvent_DuringStartReachesScreen(t *testing.T) {
	engine := &fakeEngine{}
	m := sizedModel(t, engine)
	require.NotNil(t, engine.subscriber)

	// Simulate the synchronous emission inside Start.
	at := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	engine.subscriber(domain.NewAwaitingActorInput(at, testScript().Lines[1]))

	engine.preview, engine.active = "", true
	updated, _ := m.Update(eventMsg{event: <-m.events})
	m = updated.(Model)

	assert.Contains(t, m.View(), "> ")
}

func TestUpdate_ForwardsKeySignals(t *testing.T) {
	engine := &fakeEngine{}
	m := sizedModel(t, engine)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []domain.KeySignal{
		domain.SignalPrintable,
		domain.SignalErase,
		domain.SignalSubmit,
	}, engine.signals)
}

func TestUpdate_RestartKey(t *testing.T) {
	engine := &fakeEngine{}
	m := sizedModel(t, engine)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Equal(t, 1, engine.restarted)
	assert.Empty(t, engine.signals)
}

func TestUpdate_ExitCancelsSession(t *testing.T) {
	engine := &fakeEngine{}
	m := sizedModel(t, engine)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, 1, engine.cancelled)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_RendersDeliveredLines(t *testing.T) {
	engine := &fakeEngine{}
	m := sizedModel(t, engine)

	at := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	line := testScript().Lines[0]
	updated, _ := m.Update(eventMsg{event: domain.NewLineDelivered(at, line)})
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "Ghost")
	assert.Contains(t, view, "you there?")
}

func TestView_TypingIndicator(t *testing.T) {
	engine := &fakeEngine{}
	m := sizedModel(t, engine)
	at := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

	updated, _ := m.Update(eventMsg{event: domain.NewTypingStarted(at, "ghost")})
	m = updated.(Model)
	assert.Contains(t, m.View(), "Ghost is typing")

	updated, _ = m.Update(eventMsg{event: domain.NewTypingStopped(at, "ghost")})
	m = updated.(Model)
	assert.NotContains(t, m.View(), "is typing")
}

func TestView_ComposeShowsPreview(t *testing.T) {
	engine := &fakeEngine{preview: "alw", active: true}
	m := sizedModel(t, engine)
	at := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

	updated, _ := m.Update(eventMsg{event: domain.NewAwaitingActorInput(at, testScript().Lines[1])})
	m = updated.(Model)

	assert.Contains(t, m.View(), "> alw")
}

func TestApplyEvent_ResetClearsTranscript(t *testing.T) {
	engine := &fakeEngine{}
	m := sizedModel(t, engine)
	at := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

	updated, _ := m.Update(eventMsg{event: domain.NewLineDelivered(at, testScript().Lines[0])})
	m = updated.(Model)
	updated, _ = m.Update(eventMsg{event: domain.NewSessionCompleted(at)})
	m = updated.(Model)
	assert.Contains(t, m.View(), "scene complete")

	updated, _ = m.Update(eventMsg{event: domain.NewSessionReset(at)})
	m = updated.(Model)
	view := m.View()
	assert.NotContains(t, view, "you there?")
	assert.NotContains(t, view, "scene complete")
}
