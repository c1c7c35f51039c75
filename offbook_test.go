package offbook_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offbook/offbook"
	"github.com/offbook/offbook/internal/testutils"
	"github.com/offbook/offbook/pkg/domain"
)

func demoScript() domain.Script {
	return domain.Script{
		Title: "Scene 12",
		Participants: []domain.Participant{
			{ID: "mia", Name: "Mia", Actor: true},
			{ID: "ray", Name: "Ray"},
		},
		Lines: []domain.Line{
			{ID: "l1", SpeakerID: "ray", Text: "hey. you up?", Timing: domain.TimingInstant},
			{ID: "l2", SpeakerID: "mia", Text: "yeah"},
		},
	}
}

func TestSession_EndToEnd(t *testing.T) {
	clk := testutils.NewClock(time.Unix(0, 0))
	sess := offbook.New(
		offbook.WithClock(clk),
		offbook.WithRand(rand.New(rand.NewPCG(1, 0))),
		offbook.WithMetricsRegistry(prometheus.NewRegistry()),
	)

	var kinds []domain.EventKind
	sess.Subscribe(func(ev domain.Event) { kinds = append(kinds, ev.EventKind()) })

	require.NoError(t, sess.Start(demoScript()))
	clk.Advance(0) // instant line delivers at once

	require.Equal(t, domain.StatusAwaitingActor, sess.Status())

	for range "yeah" {
		sess.OnKeySignal(domain.SignalPrintable)
	}
	preview, active := sess.Preview()
	require.True(t, active)
	assert.Equal(t, "yeah", preview)

	sess.OnKeySignal(domain.SignalSubmit)

	assert.Equal(t, domain.StatusComplete, sess.Status())
	assert.Equal(t, []domain.EventKind{
		domain.EventTypingStarted,
		domain.EventTypingStopped,
		domain.EventLineDelivered,
		domain.EventAwaitingActor,
		domain.EventLineDelivered,
		domain.EventCompleted,
	}, kinds)

	delivered := sess.Delivered()
	require.Len(t, delivered, 2)
	assert.Equal(t, "hey. you up?", delivered[0].Text)
}

func TestSession_StartValidates(t *testing.T) {
	sess := offbook.New()
	err := sess.Start(domain.Script{Title: "nothing"})
	assert.ErrorIs(t, err, domain.ErrEmptyScript)
	assert.Equal(t, domain.StatusIdle, sess.Status())
}

func TestSession_SnapshotIsolation(t *testing.T) {
	clk := testutils.NewClock(time.Unix(0, 0))
	sess := offbook.New(offbook.WithClock(clk))

	script := demoScript()
	require.NoError(t, sess.Start(script))

	// Editing the authoring script mid-session must not reach the snapshot.
	script.Lines[0].Text = "edited live"

	snap, ok := sess.Script()
	require.True(t, ok)
	assert.Equal(t, "hey. you up?", snap.Lines[0].Text)

	clk.Advance(0)
	assert.Equal(t, "hey. you up?", sess.Delivered()[0].Text)
}
