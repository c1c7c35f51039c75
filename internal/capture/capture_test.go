package capture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offbook/offbook/internal/capture"
	"github.com/offbook/offbook/pkg/domain"
)

func TestApply_RevealsTargetRegardlessOfKeys(t *testing.T) {
	c := capture.New()
	require.NoError(t, c.Begin("ok"))

	// Whatever physical keys were struck, only the category counts.
	out := c.Apply(domain.SignalPrintable)
	assert.Equal(t, capture.OutcomeAdvanced, out.Kind)
	assert.Equal(t, "o", c.Displayed())

	out = c.Apply(domain.SignalPrintable)
	assert.Equal(t, capture.OutcomeAdvanced, out.Kind)
	assert.Equal(t, "ok", c.Displayed())

	out = c.Apply(domain.SignalSubmit)
	require.Equal(t, capture.OutcomeSubmitted, out.Kind)
	assert.Equal(t, "ok", out.Text)
	assert.False(t, c.Active())
}

func TestApply_PrintableAtFullLengthIsAbsorbed(t *testing.T) {
	c := capture.New()
	require.NoError(t, c.Begin("hi"))

	c.Apply(domain.SignalPrintable)
	c.Apply(domain.SignalPrintable)

	out := c.Apply(domain.SignalPrintable)
	assert.Equal(t, capture.OutcomeAbsorbed, out.Kind)
	assert.Equal(t, capture.AbsorbAtFullLength, out.Reason)
	assert.Equal(t, 2, c.Revealed())
}

func TestApply_EraseBoundary(t *testing.T) {
	c := capture.New()
	require.NoError(t, c.Begin("abc"))

	// Repeated erases at zero stay at zero; the length never goes negative.
	for i := 0; i < 5; i++ {
		out := c.Apply(domain.SignalErase)
		assert.Equal(t, capture.OutcomeAbsorbed, out.Kind)
		assert.Equal(t, capture.AbsorbAtStart, out.Reason)
		assert.Equal(t, 0, c.Revealed())
	}

	c.Apply(domain.SignalPrintable)
	c.Apply(domain.SignalPrintable)
	out := c.Apply(domain.SignalErase)
	assert.Equal(t, capture.OutcomeErased, out.Kind)
	assert.Equal(t, "a", c.Displayed())
}

func TestApply_PrematureSubmitIsAbsorbed(t *testing.T) {
	c := capture.New()
	require.NoError(t, c.Begin("ok"))

	c.Apply(domain.SignalPrintable)
	out := c.Apply(domain.SignalSubmit)
	assert.Equal(t, capture.OutcomeAbsorbed, out.Kind)
	assert.Equal(t, capture.AbsorbIncomplete, out.Reason)
	assert.True(t, c.Active())
	assert.Equal(t, 1, c.Revealed())
}

func TestApply_EmptyTargetIsImmediatelySubmittable(t *testing.T) {
	c := capture.New()
	require.NoError(t, c.Begin(""))

	out := c.Apply(domain.SignalSubmit)
	require.Equal(t, capture.OutcomeSubmitted, out.Kind)
	assert.Equal(t, "", out.Text)
}

func TestApply_UnicodeTarget(t *testing.T) {
	c := capture.New()
	require.NoError(t, c.Begin("héllo 😀"))

	for i := 0; i < 7; i++ {
		c.Apply(domain.SignalPrintable)
	}
	assert.Equal(t, "héllo 😀", c.Displayed())

	out := c.Apply(domain.SignalSubmit)
	require.Equal(t, capture.OutcomeSubmitted, out.Kind)
	assert.Equal(t, "héllo 😀", out.Text)
}

func TestApply_IgnoredAndInactiveSignals(t *testing.T) {
	c := capture.New()

	out := c.Apply(domain.SignalPrintable)
	assert.Equal(t, capture.OutcomeAbsorbed, out.Kind)
	assert.Equal(t, capture.AbsorbInactive, out.Reason)

	require.NoError(t, c.Begin("x"))
	out = c.Apply(domain.SignalIgnored)
	assert.Equal(t, capture.OutcomeAbsorbed, out.Kind)
	assert.Equal(t, capture.AbsorbUnmapped, out.Reason)
	assert.Equal(t, 0, c.Revealed())
}

func TestBegin_Reentrant(t *testing.T) {
	c := capture.New()
	require.NoError(t, c.Begin("first"))

	err := c.Begin("second")
	assert.ErrorIs(t, err, domain.ErrInputAlreadyActive)
	assert.Equal(t, "first", c.Target())
}

func TestCancel_AllowsNewBegin(t *testing.T) {
	c := capture.New()
	require.NoError(t, c.Begin("first"))
	c.Apply(domain.SignalPrintable)

	c.Cancel()
	assert.False(t, c.Active())

	require.NoError(t, c.Begin("second"))
	assert.Equal(t, 0, c.Revealed())
}
