package driving

import (
	"context"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

// UploadService drives the single-file upload lifecycle:
// idle → uploading → success | error. Terminal states are re-enterable.
type UploadService interface {
	// Upload reads the file at path and submits it for processing.
	// On success the resulting record is handed to the record store
	// and returned. On failure the prior active record is untouched
	// and the failure text is retained for display. A second call
	// while one is in flight fails with domain.ErrUploadInFlight.
	Upload(ctx context.Context, path string) (*domain.DocumentRecord, error)

	// State returns the current lifecycle state.
	State() domain.UploadState

	// Filename returns the name of the last selected file, for display.
	Filename() string

	// Err returns the failure behind an error state, or nil.
	Err() error
}
