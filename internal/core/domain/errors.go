package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoActiveDocument indicates an operation needs an active
	// DocumentRecord but none is held by the record store.
	ErrNoActiveDocument = errors.New("no active document")

	// ErrEmptyFile indicates the selected file has no content.
	// The processing endpoint rejects empty uploads.
	ErrEmptyFile = errors.New("file is empty")

	// ErrUploadInFlight indicates an upload is already running.
	// Concurrent uploads are rejected rather than queued.
	ErrUploadInFlight = errors.New("upload already in progress")

	// ErrSendInFlight indicates a chat round trip is already running.
	ErrSendInFlight = errors.New("chat request already in progress")
)

// UploadError carries the server-provided or transport-provided message
// for a failed file submission. Upload failures halt the flow, so they
// propagate as errors rather than being folded into a reply value.
type UploadError struct {
	// Message is the best-available failure text, surfaced verbatim.
	Message string
}

// Error implements the error interface.
func (e *UploadError) Error() string {
	return "upload failed: " + e.Message
}

// ChatError carries the failure text for a chat round trip. It exists
// for callers that need to distinguish chat failures programmatically;
// the gateway normally folds it into ChatReply.Err instead of returning it.
type ChatError struct {
	// Message is the best-available failure text, surfaced verbatim.
	Message string
}

// Error implements the error interface.
func (e *ChatError) Error() string {
	return "chat request failed: " + e.Message
}
