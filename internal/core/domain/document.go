package domain

import "time"

// ProcessingStatus describes where a document is in the server-side pipeline.
type ProcessingStatus string

// Processing statuses reported by the /api/process endpoint.
const (
	ProcessingPending   ProcessingStatus = "pending"
	ProcessingRunning   ProcessingStatus = "processing"
	ProcessingCompleted ProcessingStatus = "completed"
	ProcessingFailed    ProcessingStatus = "failed"
)

// IsTerminal reports whether the status is a final pipeline state.
func (s ProcessingStatus) IsTerminal() bool {
	return s == ProcessingCompleted || s == ProcessingFailed
}

// DocumentRecord is the authoritative representation of an uploaded and
// processed document, as returned by the remote processing service.
// At most one record is active at a time; its PK is assigned by the
// server and never changes.
type DocumentRecord struct {
	// PK is the opaque numeric key identifying the record, assigned remotely.
	PK int64 `json:"pk"`

	// Filename is the original name of the uploaded file.
	Filename string `json:"filename"`

	// URL is the source location of the stored file.
	URL string `json:"url"`

	// Content is the raw extracted text.
	Content string `json:"content"`

	// FileSize is the upload size in bytes.
	FileSize int64 `json:"file_size"`

	// FileType is the detected MIME type.
	FileType string `json:"file_type"`

	// MarkdownContent is the server-produced markdown rendering.
	// It is the only field the document view renders.
	MarkdownContent string `json:"markdown_content"`

	// ProcessingStatus tracks the document pipeline state.
	ProcessingStatus ProcessingStatus `json:"processing_status"`

	// EmbeddingStatus tracks the embedding pipeline state.
	EmbeddingStatus string `json:"embedding_status"`

	// CreatedAt is when the record was created on the server.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the record was last updated on the server.
	UpdatedAt time.Time `json:"updated_at"`

	// ErrorMessage carries the server-side failure text, if any.
	ErrorMessage *string `json:"error_message"`

	// Metadata contains free-form key-value pairs about the file.
	Metadata map[string]any `json:"metadata"`

	// History is the opaque server-side status change log.
	History []map[string]any `json:"history"`
}

// DisplayName returns the filename, falling back to a placeholder
// when the record carries none.
func (r *DocumentRecord) DisplayName() string {
	if r == nil || r.Filename == "" {
		return "Untitled Document"
	}
	return r.Filename
}

// FileUpload is the outbound shape of a file submission: the blob
// plus the name/size/type metadata the processing endpoint expects.
type FileUpload struct {
	// Filename is the name sent in the multipart form.
	Filename string

	// ContentType is the MIME type of the blob.
	ContentType string

	// Size is the blob size in bytes.
	Size int64

	// Data is the file content.
	Data []byte
}
