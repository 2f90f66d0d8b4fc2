package cli

import (
	"context"
	"errors"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

// mockRecordService implements driving.RecordService for command tests.
type mockRecordService struct {
	record *domain.DocumentRecord
	clears int
}

func (m *mockRecordService) Current() *domain.DocumentRecord { return m.record }

func (m *mockRecordService) Set(record *domain.DocumentRecord) { m.record = record }

func (m *mockRecordService) Clear() {
	m.record = nil
	m.clears++
}

// mockChatService implements driving.ChatService for command tests.
type mockChatService struct {
	messages []domain.ChatMessage
	sendFunc func(ctx context.Context, text string)
	resets   int
}

func (m *mockChatService) Send(ctx context.Context, text string) {
	if m.sendFunc != nil {
		m.sendFunc(ctx, text)
	}
}

func (m *mockChatService) Messages() []domain.ChatMessage { return m.messages }

func (m *mockChatService) Loading() bool { return false }

func (m *mockChatService) Reset() { m.resets++ }

// mockUploadService implements driving.UploadService for command tests.
type mockUploadService struct {
	uploadFunc func(ctx context.Context, path string) (*domain.DocumentRecord, error)
	state      domain.UploadState
	filename   string
	err        error
}

func (m *mockUploadService) Upload(ctx context.Context, path string) (*domain.DocumentRecord, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, path)
	}
	return nil, errors.New("not configured")
}

func (m *mockUploadService) State() domain.UploadState { return m.state }

func (m *mockUploadService) Filename() string { return m.filename }

func (m *mockUploadService) Err() error { return m.err }

// mockHistoryService implements driving.HistoryService for command tests.
type mockHistoryService struct {
	exchanges []domain.Exchange
	listErr   error
	purged    []int64
}

func (m *mockHistoryService) List(_ context.Context, pk int64) ([]domain.Exchange, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []domain.Exchange
	for _, ex := range m.exchanges {
		if ex.PK == pk {
			out = append(out, ex)
		}
	}
	return out, nil
}

func (m *mockHistoryService) Purge(_ context.Context, pk int64) error {
	m.purged = append(m.purged, pk)
	return nil
}

// mockHealthChecker implements HealthChecker for command tests.
type mockHealthChecker struct {
	err error
}

func (m *mockHealthChecker) Health(context.Context) error { return m.err }

// setupTestServices swaps in fresh mocks and returns them with a
// cleanup restoring the previous wiring.
func setupTestServices() (*mockRecordService, *mockChatService, *mockUploadService, *mockHistoryService, func()) {
	oldRecord := recordService
	oldChat := chatService
	oldUpload := uploadService
	oldHistory := historyService
	oldHealth := healthChecker

	records := &mockRecordService{}
	chat := &mockChatService{}
	upload := &mockUploadService{}
	history := &mockHistoryService{}

	recordService = records
	chatService = chat
	uploadService = upload
	historyService = history
	healthChecker = &mockHealthChecker{}

	cleanup := func() {
		recordService = oldRecord
		chatService = oldChat
		uploadService = oldUpload
		historyService = oldHistory
		healthChecker = oldHealth
	}
	return records, chat, upload, history, cleanup
}
