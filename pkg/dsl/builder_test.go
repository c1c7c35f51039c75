package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offbook/offbook/pkg/domain"
)

func TestScene_Build(t *testing.T) {
	scene := NewScene("Rooftop Scene")
	scene.Participant("ghost", "Ghost")
	scene.Actor("lead", "Lead")

	scene.Say("ghost", "you there?").ID("opening")
	scene.SayAfter("ghost", "pick up.", 2.5)
	scene.SayInstant("ghost", "now")
	scene.Say("lead", "always")

	script, err := scene.Build()
	require.NoError(t, err)

	assert.Equal(t, "Rooftop Scene", script.Title)
	require.Len(t, script.Participants, 2)
	assert.True(t, script.Participants[1].Actor)

	require.Len(t, script.Lines, 4)
	assert.Equal(t, "opening", script.Lines[0].ID)
	assert.Equal(t, "line-002", script.Lines[1].ID)
	assert.Equal(t, domain.TimingManual, script.Lines[1].Timing)
	assert.Equal(t, 2.5, script.Lines[1].ManualDelaySeconds)
	assert.Equal(t, domain.TimingInstant, script.Lines[2].Timing)
	assert.Equal(t, "lead", script.Lines[3].SpeakerID)
}

func TestScene_Build_UnknownSpeaker(t *testing.T) {
	scene := NewScene("Bad Scene")
	scene.Participant("ghost", "Ghost")
	scene.Say("nobody", "hello?")

	_, err := scene.Build()
	require.Error(t, err)

	var unknown *domain.UnknownSpeakerError
	assert.ErrorAs(t, err, &unknown)
}

func TestScene_Build_Empty(t *testing.T) {
	scene := NewScene("Empty")
	scene.Participant("ghost", "Ghost")

	_, err := scene.Build()
	assert.ErrorIs(t, err, domain.ErrEmptyScript)
}

func TestScene_Build_TwoActors(t *testing.T) {
	scene := NewScene("Crowded")
	scene.Actor("a", "A")
	scene.Actor("b", "B")
	scene.Say("a", "hi")

	_, err := scene.Build()
	assert.ErrorIs(t, err, domain.ErrAmbiguousActor)
}

func TestScene_ParticipantUpserts(t *testing.T) {
	scene := NewScene("Scene")
	scene.Participant("ghost", "Ghost")
	scene.Participant("ghost", "The Ghost")
	scene.Say("ghost", "hi")

	script, err := scene.Build()
	require.NoError(t, err)
	require.Len(t, script.Participants, 1)
	assert.Equal(t, "The Ghost", script.Participants[0].Name)
}
