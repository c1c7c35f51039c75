// Package file implements ports.RunStore on the local filesystem, one JSON
// document per run.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/offbook/offbook/pkg/domain"
)

// Store implements ports.RunStore using the local filesystem.
type Store struct {
	BasePath string
}

// NewStore creates a file-backed run store rooted at basePath.
// If basePath is empty, it defaults to ".offbook/runs".
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".offbook", "runs")
	}
	return &Store{BasePath: basePath}
}

// Save persists the run record to a JSON file.
func (f *Store) Save(ctx context.Context, runID string, record *domain.RunRecord) error {
	if runID == "" {
		return fmt.Errorf("runID cannot be empty")
	}

	if err := os.MkdirAll(f.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure run directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run record: %w", err)
	}

	if err := os.WriteFile(f.path(runID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write run file: %w", err)
	}
	return nil
}

// Load retrieves the run record from its JSON file.
func (f *Store) Load(ctx context.Context, runID string) (*domain.RunRecord, error) {
	if runID == "" {
		return nil, fmt.Errorf("runID cannot be empty")
	}

	data, err := os.ReadFile(f.path(runID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to read run file: %w", err)
	}

	var record domain.RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run record: %w", err)
	}
	return &record, nil
}

// Delete removes the run file. Missing files are not an error.
func (f *Store) Delete(ctx context.Context, runID string) error {
	err := os.Remove(f.path(runID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete run file: %w", err)
	}
	return nil
}

// List returns the IDs of all stored runs.
func (f *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list run directory: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	return ids, nil
}

func (f *Store) path(runID string) string {
	return filepath.Join(f.BasePath, runID+".json")
}
