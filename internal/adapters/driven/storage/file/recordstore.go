// Package file provides file-backed persistence for the active document
// record. A single JSON slot under the docchat data directory survives
// restarts so a session can resume with its last uploaded document.
package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
	"github.com/docchat-labs/docchat-cli/internal/logger"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// recordFile is the slot filename within the data directory.
const recordFile = "record.json"

// RecordStore is a file-based implementation of driven.RecordStore.
// The active record is stored as a single JSON document; saving
// replaces it, deleting empties the slot.
type RecordStore struct {
	mu       sync.Mutex
	filePath string
}

// NewRecordStore creates a record store rooted at dataDir.
// If dataDir is empty, defaults to ~/.docchat.
func NewRecordStore(dataDir string) (*RecordStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(home, ".docchat")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, err
	}

	return &RecordStore{
		filePath: filepath.Join(dataDir, recordFile),
	}, nil
}

// Load reads the stored record. A missing slot returns (nil, nil).
// A corrupt slot is treated the same way, after logging, so a damaged
// file never blocks startup.
func (s *RecordStore) Load() (*domain.DocumentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var record domain.DocumentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		logger.Warn("Discarding corrupt record file %s: %v", s.filePath, err)
		return nil, nil
	}

	return &record, nil
}

// Save persists the record, replacing any previous one.
func (s *RecordStore) Save(record *domain.DocumentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Delete empties the slot. Deleting an already-empty slot is a no-op.
func (s *RecordStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the slot file path.
func (s *RecordStore) Path() string {
	return s.filePath
}
