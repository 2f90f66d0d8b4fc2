package driven

import "github.com/docchat-labs/docchat-cli/internal/core/domain"

// RecordStore is the persistence slot for the active DocumentRecord.
// It holds zero or one serialised record; writes are synchronous so the
// stored value always reflects the most recently set in-memory value.
type RecordStore interface {
	// Load reads the persisted record. A missing or unparsable entry
	// yields (nil, nil): corruption is logged by the implementation
	// and treated as absence, never surfaced.
	Load() (*domain.DocumentRecord, error)

	// Save serialises and stores the record, replacing any prior value.
	Save(record *domain.DocumentRecord) error

	// Delete removes the persisted entry. Deleting an absent entry
	// is not an error.
	Delete() error
}
