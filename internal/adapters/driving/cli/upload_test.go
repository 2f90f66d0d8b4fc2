package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

func TestUploadCmd_Use(t *testing.T) {
	assert.Equal(t, "upload [file]", uploadCmd.Use)
}

func TestUploadCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"upload"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestUploadCmd_Success(t *testing.T) {
	_, _, upload, _, cleanup := setupTestServices()
	defer cleanup()

	upload.uploadFunc = func(_ context.Context, path string) (*domain.DocumentRecord, error) {
		assert.Equal(t, "report.pdf", path)
		return &domain.DocumentRecord{
			PK:               7,
			Filename:         "report.pdf",
			ProcessingStatus: domain.ProcessingCompleted,
		}, nil
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"upload", "report.pdf"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Uploaded report.pdf (pk=7)")
	assert.Contains(t, buf.String(), "completed")
}

func TestUploadCmd_Failure(t *testing.T) {
	_, _, upload, _, cleanup := setupTestServices()
	defer cleanup()

	upload.uploadFunc = func(context.Context, string) (*domain.DocumentRecord, error) {
		return nil, errors.New("file too large")
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"upload", "big.pdf"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "file too large")
}

func TestUploadCmd_NoService(t *testing.T) {
	_, _, _, _, cleanup := setupTestServices()
	defer cleanup()
	uploadService = nil

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"upload", "a.md"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
