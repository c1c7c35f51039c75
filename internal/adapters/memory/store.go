// Package memory implements ports.RunStore in memory, for tests and for
// rehearsals where nobody wants the run log kept.
package memory

import (
	"context"
	"sync"

	"github.com/offbook/offbook/pkg/domain"
)

// Store implements ports.RunStore in memory. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string]*domain.RunRecord
}

// NewStore creates a new in-memory run store.
func NewStore() *Store {
	return &Store{data: make(map[string]*domain.RunRecord)}
}

// Save persists the record in memory.
func (s *Store) Save(ctx context.Context, runID string, record *domain.RunRecord) error {
	copied := copyRecord(record)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[runID] = copied
	return nil
}

// Load retrieves a record. Callers get a copy so they cannot mutate store
// state through the returned pointer.
func (s *Store) Load(ctx context.Context, runID string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.data[runID]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return copyRecord(record), nil
}

// Delete removes a record.
func (s *Store) Delete(ctx context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, runID)
	return nil
}

// List returns the stored run IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}

func copyRecord(src *domain.RunRecord) *domain.RunRecord {
	out := *src
	out.Delivered = make([]domain.Line, len(src.Delivered))
	copy(out.Delivered, src.Delivered)
	return &out
}
