// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewUpload is the file selection and upload view.
	ViewUpload ViewType = iota
	// ViewDocument shows the rendered markdown of the active document.
	ViewDocument
	// ViewChat is the question and answer view.
	ViewChat
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewUpload:
		return "upload"
	case ViewDocument:
		return "document"
	case ViewChat:
		return "chat"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// UploadFinished carries the upload outcome back to the model.
type UploadFinished struct {
	Record *domain.DocumentRecord
	Err    error
}

// TurnSettled signals that a chat round trip completed and the
// message log holds the answer.
type TurnSettled struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
