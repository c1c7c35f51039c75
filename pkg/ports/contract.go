package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offbook/offbook/pkg/domain"
)

// RunRunStoreContract exercises the behavior every RunStore adapter must
// share. Adapter test packages call it with a fresh store.
func RunRunStoreContract(t *testing.T, store RunStore) {
	t.Helper()
	ctx := context.Background()

	record := &domain.RunRecord{
		ScriptTitle: "contract scene",
		StartedAt:   time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC),
		EndedAt:     time.Date(2026, 3, 14, 20, 2, 30, 0, time.UTC),
		Completed:   true,
		Delivered: []domain.Line{
			{ID: "l1", SpeakerID: "ray", Text: "hey. you up?"},
			{ID: "l2", SpeakerID: "mia", Text: "yeah"},
		},
	}

	t.Run("load missing", func(t *testing.T) {
		_, err := store.Load(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("save and load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "run-1", record))

		got, err := store.Load(ctx, "run-1")
		require.NoError(t, err)
		assert.Equal(t, record.ScriptTitle, got.ScriptTitle)
		assert.True(t, got.Completed)
		require.Len(t, got.Delivered, 2)
		assert.Equal(t, "yeah", got.Delivered[1].Text)
	})

	t.Run("load isolation", func(t *testing.T) {
		got, err := store.Load(ctx, "run-1")
		require.NoError(t, err)
		got.Delivered[0].Text = "mutated"

		again, err := store.Load(ctx, "run-1")
		require.NoError(t, err)
		assert.Equal(t, "hey. you up?", again.Delivered[0].Text)
	})

	t.Run("list", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "run-2", record))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, "run-1")
		assert.Contains(t, ids, "run-2")
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "run-1"))

		_, err := store.Load(ctx, "run-1")
		assert.ErrorIs(t, err, domain.ErrRunNotFound)

		// Deleting a missing run is a no-op.
		assert.NoError(t, store.Delete(ctx, "run-1"))
	})
}
