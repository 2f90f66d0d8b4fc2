// Package tui provides the interactive terminal user interface for docchat.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Record owns the active document.
	Record driving.RecordService

	// Chat owns the session message log.
	Chat driving.ChatService

	// Upload drives the file upload lifecycle.
	Upload driving.UploadService

	// History exposes the durable chat history. Optional.
	History driving.HistoryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	record driving.RecordService,
	chat driving.ChatService,
	upload driving.UploadService,
) *Ports {
	return &Ports{
		Record: record,
		Chat:   chat,
		Upload: upload,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Record == nil {
		return ErrMissingRecordService
	}
	if p.Chat == nil {
		return ErrMissingChatService
	}
	if p.Upload == nil {
		return ErrMissingUploadService
	}
	return nil
}
