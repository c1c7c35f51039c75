package playback

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offbook/offbook/internal/testutils"
	"github.com/offbook/offbook/internal/timeline"
	"github.com/offbook/offbook/internal/timing"
	"github.com/offbook/offbook/pkg/domain"
)

func (s *Session) trackedTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func newTimerSession(t *testing.T) (*Session, *testutils.Clock) {
	t.Helper()
	clk := testutils.NewClock(time.Date(2026, 6, 1, 19, 30, 0, 0, time.UTC))
	sess := NewSession(
		WithClock(clk),
		WithTimingModel(timing.NewModel(domain.TimingConfig{}, rand.New(rand.NewPCG(1, 0)))),
	)
	return sess, clk
}

// A long scene must not hold on to handles of timers that already fired;
// only the armed ones for the line under the cursor stay tracked.
func TestTimers_FiredHandlesAreDropped(t *testing.T) {
	sess, clk := newTimerSession(t)

	lines := make([]domain.Line, 0, 30)
	for i := 0; i < 30; i++ {
		lines = append(lines, domain.Line{
			ID:        fmt.Sprintf("l%d", i),
			SpeakerID: "ray",
			Text:      "again",
			Timing:    domain.TimingInstant,
		})
	}
	tl, err := timeline.Normalize(domain.Script{
		Title:        "long scene",
		Participants: []domain.Participant{{ID: "ray", Name: "Ray"}},
		Lines:        lines,
	})
	require.NoError(t, err)

	require.NoError(t, sess.Start(tl))
	clk.Advance(0)

	require.Equal(t, domain.StatusComplete, sess.Status())
	assert.Zero(t, sess.trackedTimers())
	assert.Zero(t, clk.Pending())
}

func TestTimers_CancelClearsArmedHandles(t *testing.T) {
	sess, clk := newTimerSession(t)

	tl, err := timeline.Normalize(domain.Script{
		Title:        "cut short",
		Participants: []domain.Participant{{ID: "ray", Name: "Ray"}},
		Lines: []domain.Line{
			{ID: "l1", SpeakerID: "ray", Text: "first"},
			{ID: "l2", SpeakerID: "ray", Text: "second"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, sess.Start(tl))
	require.Equal(t, 2, sess.trackedTimers())

	sess.Cancel()
	assert.Zero(t, sess.trackedTimers())
	assert.Zero(t, clk.Pending())
}
