package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offbook/offbook/internal/timeline"
	"github.com/offbook/offbook/pkg/domain"
)

func twoHander() domain.Script {
	return domain.Script{
		Title: "Scene 12",
		Participants: []domain.Participant{
			{ID: "mia", Name: "Mia", Actor: true},
			{ID: "ray", Name: "Ray"},
		},
		Lines: []domain.Line{
			{ID: "l1", SpeakerID: "ray", Text: "hey. you up?"},
			{ID: "l2", SpeakerID: "mia", Text: "yeah"},
			{ID: "l3", SpeakerID: "ray", Text: "we need to talk", Timing: domain.TimingManual, ManualDelaySeconds: 2},
		},
	}
}

func TestNormalize(t *testing.T) {
	tl, err := timeline.Normalize(twoHander())
	require.NoError(t, err)

	assert.Equal(t, "Scene 12", tl.Title())
	assert.Equal(t, 3, tl.Len())
	assert.Equal(t, "mia", tl.ActorID())
	assert.Equal(t, []int{1}, tl.ActorLineIndices())
	assert.Equal(t, []int{0, 2}, tl.AutonomousLineIndices())
	assert.True(t, tl.IsActorLine(1))
	assert.False(t, tl.IsActorLine(0))

	// Empty timing mode defaults to natural; explicit modes survive.
	assert.Equal(t, domain.TimingNatural, tl.Line(0).Timing)
	assert.Equal(t, domain.TimingManual, tl.Line(2).Timing)

	p, ok := tl.Participant("ray")
	require.True(t, ok)
	assert.Equal(t, "Ray", p.Name)
}

func TestNormalize_EmptyScript(t *testing.T) {
	_, err := timeline.Normalize(domain.Script{Title: "empty"})
	assert.ErrorIs(t, err, domain.ErrEmptyScript)
}

func TestNormalize_UnknownSpeaker(t *testing.T) {
	script := twoHander()
	script.Lines[1].SpeakerID = "ghost"

	_, err := timeline.Normalize(script)
	var unknown *domain.UnknownSpeakerError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "l2", unknown.LineID)
	assert.Equal(t, "ghost", unknown.SpeakerID)
}

func TestNormalize_AmbiguousActor(t *testing.T) {
	script := twoHander()
	script.Participants[1].Actor = true

	_, err := timeline.Normalize(script)
	assert.ErrorIs(t, err, domain.ErrAmbiguousActor)
}

func TestNormalize_NoActorIsValid(t *testing.T) {
	script := twoHander()
	script.Participants[0].Actor = false
	script.Lines = script.Lines[:2]

	tl, err := timeline.Normalize(script)
	require.NoError(t, err)
	assert.Empty(t, tl.ActorLineIndices())
	assert.Equal(t, []int{0, 1}, tl.AutonomousLineIndices())
	assert.Equal(t, "", tl.ActorID())
}

func TestNormalize_SnapshotsSource(t *testing.T) {
	script := twoHander()
	tl, err := timeline.Normalize(script)
	require.NoError(t, err)

	// Mutating the authoring script after normalization must not leak into
	// the plan, and neither must mutating the Lines() copy.
	script.Lines[0].Text = "edited after start"
	assert.Equal(t, "hey. you up?", tl.Line(0).Text)

	lines := tl.Lines()
	lines[1].Text = "mutated copy"
	assert.Equal(t, "yeah", tl.Line(1).Text)
}
