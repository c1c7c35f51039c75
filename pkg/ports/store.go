package ports

import (
	"context"

	"github.com/offbook/offbook/pkg/domain"
)

// RunStore defines the interface for persisting performance run records.
// Stores hold finished (or abandoned) runs only; in-flight playback state is
// never persisted.
type RunStore interface {
	// Save persists the record under the given run ID, overwriting any
	// previous record with that ID.
	Save(ctx context.Context, runID string, record *domain.RunRecord) error

	// Load retrieves the record for a run ID.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, runID string) (*domain.RunRecord, error)

	// Delete removes the record for a run ID. Deleting a missing run is not
	// an error.
	Delete(ctx context.Context, runID string) error

	// List returns the IDs of all stored runs.
	List(ctx context.Context) ([]string, error)
}
