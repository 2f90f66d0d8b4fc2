package services

import (
	"sync"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
	"github.com/docchat-labs/docchat-cli/internal/logger"
)

// Ensure RecordService implements the interface.
var _ driving.RecordService = (*RecordService)(nil)

// RecordService holds the single active DocumentRecord and keeps the
// persistence slot in sync with it. It is the only writer to the slot;
// the chat service only reads the current record.
type RecordService struct {
	mu      sync.RWMutex
	store   driven.RecordStore
	current *domain.DocumentRecord

	// stored tracks whether the slot currently holds a value, so
	// clearing an already absent record issues no second delete.
	stored bool
}

// NewRecordService creates the record service and reloads the last
// session's record from the store. A failed or unparsable load is
// logged and treated as absence, so a stale slot never blocks startup.
func NewRecordService(store driven.RecordStore) *RecordService {
	s := &RecordService{store: store}

	if store != nil {
		rec, err := store.Load()
		if err != nil {
			logger.Warn("Loading stored record: %v", err)
		} else if rec != nil {
			logger.Debug("Resumed record pk=%d (%s)", rec.PK, rec.Filename)
			s.current = rec
			s.stored = true
		}
	}

	return s
}

// Current returns the active record, or nil when none is held.
func (s *RecordService) Current() *domain.DocumentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set replaces the active record and synchronously persists the change.
// Persistence failures are logged, not surfaced: the in-memory record
// stays authoritative for the session either way.
func (s *RecordService) Set(record *domain.DocumentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = record

	if s.store == nil {
		return
	}

	if record == nil {
		if !s.stored {
			return
		}
		if err := s.store.Delete(); err != nil {
			logger.Warn("Deleting stored record: %v", err)
			return
		}
		s.stored = false
		return
	}

	if err := s.store.Save(record); err != nil {
		logger.Warn("Saving record pk=%d: %v", record.PK, err)
		return
	}
	s.stored = true
}

// Clear removes the active record and its persisted entry.
func (s *RecordService) Clear() {
	s.Set(nil)
}
