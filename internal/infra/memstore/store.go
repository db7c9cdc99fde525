package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/aalvaropc/recordsort/internal/domain"
	"github.com/aalvaropc/recordsort/internal/ports"
)

// Store keeps records in memory, in insertion order.
type Store struct {
	mu      sync.RWMutex
	records []domain.Record
}

func New(seed ...domain.Record) *Store {
	return &Store{records: slices.Clone(seed)}
}

var _ ports.RecordStore = (*Store)(nil)

func (s *Store) Append(ctx context.Context, records ...domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.records = append(s.records, records...)
	s.mu.Unlock()
	return nil
}

// List returns a snapshot; callers may sort it freely.
func (s *Store) List(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
