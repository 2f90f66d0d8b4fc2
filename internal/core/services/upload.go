package services

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sync"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
	"github.com/docchat-labs/docchat-cli/internal/logger"
)

// Ensure UploadService implements the interface.
var _ driving.UploadService = (*UploadService)(nil)

// UploadService drives the single-file upload lifecycle and hands the
// resulting DocumentRecord to the record service.
type UploadService struct {
	gateway driven.Gateway
	records driving.RecordService

	// onSuccess is invoked with the new record after it is stored.
	// The surrounding navigation logic uses it to move to the
	// document view.
	onSuccess func(*domain.DocumentRecord)

	mu       sync.RWMutex
	state    domain.UploadState
	filename string
	err      error
}

// NewUploadService creates an upload service.
// onSuccess may be nil.
func NewUploadService(
	gateway driven.Gateway,
	records driving.RecordService,
	onSuccess func(*domain.DocumentRecord),
) *UploadService {
	return &UploadService{
		gateway:   gateway,
		records:   records,
		onSuccess: onSuccess,
		state:     domain.UploadIdle,
	}
}

// Upload reads the file at path and submits it for processing.
//
// The lifecycle moves idle/success/error → uploading → success or
// error. On success the record is stored and the completion hook runs;
// on failure the prior active record is left untouched. A second call
// while one is in flight fails with domain.ErrUploadInFlight.
func (s *UploadService) Upload(ctx context.Context, path string) (*domain.DocumentRecord, error) {
	s.mu.Lock()
	if s.state == domain.UploadInProgress {
		s.mu.Unlock()
		return nil, domain.ErrUploadInFlight
	}
	s.state = domain.UploadInProgress
	s.filename = filepath.Base(path)
	s.err = nil
	s.mu.Unlock()

	record, err := s.upload(ctx, path)
	if err != nil {
		s.mu.Lock()
		s.state = domain.UploadFailed
		s.err = err
		s.mu.Unlock()
		return nil, err
	}

	s.records.Set(record)

	s.mu.Lock()
	s.state = domain.UploadSucceeded
	s.mu.Unlock()

	if s.onSuccess != nil {
		s.onSuccess(record)
	}
	return record, nil
}

// upload reads the file and performs the gateway round trip.
func (s *UploadService) upload(ctx context.Context, path string) (*domain.DocumentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.ErrEmptyFile
	}

	upload := domain.FileUpload{
		Filename:    filepath.Base(path),
		ContentType: contentType(path),
		Size:        int64(len(data)),
		Data:        data,
	}

	logger.Info("Uploading %s (%d bytes, %s)", upload.Filename, upload.Size, upload.ContentType)
	record, err := s.gateway.SubmitFile(ctx, upload)
	if err != nil {
		return nil, err
	}

	logger.Info("Upload complete: pk=%d status=%s", record.PK, record.ProcessingStatus)
	return record, nil
}

// State returns the current lifecycle state.
func (s *UploadService) State() domain.UploadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Filename returns the name of the last selected file.
func (s *UploadService) Filename() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filename
}

// Err returns the failure behind an error state, or nil.
func (s *UploadService) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// contentType detects the MIME type from the file extension.
func contentType(path string) string {
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		return "application/octet-stream"
	}
	return ct
}
