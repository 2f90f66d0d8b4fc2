package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDocumentRecord_Unmarshal tests decoding the /api/process response shape.
func TestDocumentRecord_Unmarshal(t *testing.T) {
	payload := `{
		"pk": 42,
		"filename": "report.pdf",
		"url": "https://bucket.s3.amazonaws.com/documents/report.pdf",
		"content": "raw text",
		"file_size": 1024,
		"file_type": "application/pdf",
		"markdown_content": "# Report",
		"processing_status": "completed",
		"embedding_status": "pending",
		"created_at": "2024-04-06T12:00:00Z",
		"updated_at": "2024-04-06T12:00:00Z",
		"error_message": null,
		"metadata": {"pages": 3},
		"history": [{"status": "completed"}]
	}`

	var rec DocumentRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &rec))

	assert.Equal(t, int64(42), rec.PK)
	assert.Equal(t, "report.pdf", rec.Filename)
	assert.Equal(t, "# Report", rec.MarkdownContent)
	assert.Equal(t, ProcessingCompleted, rec.ProcessingStatus)
	assert.Equal(t, int64(1024), rec.FileSize)
	assert.Nil(t, rec.ErrorMessage)
	assert.Equal(t, float64(3), rec.Metadata["pages"])
	require.Len(t, rec.History, 1)
	assert.Equal(t, 2024, rec.CreatedAt.Year())
}

// TestDocumentRecord_RoundTrip tests that a record survives
// serialisation, simulating the persistence slot.
func TestDocumentRecord_RoundTrip(t *testing.T) {
	msg := "boom"
	rec := DocumentRecord{
		PK:               7,
		Filename:         "a.md",
		MarkdownContent:  "# Hi",
		ProcessingStatus: ProcessingFailed,
		ErrorMessage:     &msg,
		Metadata:         map[string]any{"lang": "en"},
	}

	data, err := json.Marshal(&rec)
	require.NoError(t, err)

	var got DocumentRecord
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, rec.PK, got.PK)
	assert.Equal(t, rec.MarkdownContent, got.MarkdownContent)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "boom", *got.ErrorMessage)
}

func TestDocumentRecord_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		rec  *DocumentRecord
		want string
	}{
		{"with filename", &DocumentRecord{Filename: "a.md"}, "a.md"},
		{"empty filename", &DocumentRecord{}, "Untitled Document"},
		{"nil record", nil, "Untitled Document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.DisplayName())
		})
	}
}

func TestProcessingStatus_IsTerminal(t *testing.T) {
	assert.True(t, ProcessingCompleted.IsTerminal())
	assert.True(t, ProcessingFailed.IsTerminal())
	assert.False(t, ProcessingPending.IsTerminal())
	assert.False(t, ProcessingRunning.IsTerminal())
}
