package domain

// UploadState tracks the single-file upload lifecycle.
// Terminal states are re-enterable: a new upload restarts the cycle.
type UploadState int

const (
	// UploadIdle means no upload has been attempted yet.
	UploadIdle UploadState = iota

	// UploadInProgress means a file is being transmitted.
	UploadInProgress

	// UploadSucceeded means the last upload produced a DocumentRecord.
	UploadSucceeded

	// UploadFailed means the last upload ended in an error.
	UploadFailed
)

// String returns the string representation of the upload state.
func (s UploadState) String() string {
	switch s {
	case UploadIdle:
		return "idle"
	case UploadInProgress:
		return "uploading"
	case UploadSucceeded:
		return "success"
	case UploadFailed:
		return "error"
	default:
		return "unknown"
	}
}
