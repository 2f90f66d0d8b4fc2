// Package memory provides in-memory driven-port implementations,
// used in tests and as fallbacks when durable storage is unavailable.
package memory

import (
	"sync"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
// It also counts persistence side effects so tests can verify the
// one-write-per-set contract.
type RecordStore struct {
	mu     sync.Mutex
	record *domain.DocumentRecord

	// Saves and Deletes count persistence side effects.
	Saves   int
	Deletes int
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Load returns the stored record, or nil when none is held.
func (s *RecordStore) Load() (*domain.DocumentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return nil, nil
	}
	rec := *s.record
	return &rec, nil
}

// Save stores a copy of the record.
func (s *RecordStore) Save(record *domain.DocumentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := *record
	s.record = &rec
	s.Saves++
	return nil
}

// Delete removes the stored record.
func (s *RecordStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = nil
	s.Deletes++
	return nil
}
