package driving

import "github.com/docchat-labs/docchat-cli/internal/core/domain"

// RecordService owns the single active DocumentRecord for the session.
// It is the one writer path to persistence: all mutation flows through
// Set, and every call issues exactly one persistence side effect.
type RecordService interface {
	// Current returns the active record, or nil when none is held.
	Current() *domain.DocumentRecord

	// Set replaces the active record and synchronously persists it.
	// Passing nil clears the record; clearing an already absent record
	// is a no-op with no further persistence side effect.
	Set(record *domain.DocumentRecord)

	// Clear is shorthand for Set(nil).
	Clear()
}
