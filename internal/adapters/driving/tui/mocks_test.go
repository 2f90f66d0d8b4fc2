package tui

import (
	"context"
	"errors"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

type mockRecordService struct {
	record *domain.DocumentRecord
}

func (m *mockRecordService) Current() *domain.DocumentRecord { return m.record }
func (m *mockRecordService) Set(r *domain.DocumentRecord)    { m.record = r }
func (m *mockRecordService) Clear()                          { m.record = nil }

type mockChatService struct {
	messages []domain.ChatMessage
	loading  bool
	resets   int
}

func (m *mockChatService) Send(context.Context, string)   {}
func (m *mockChatService) Messages() []domain.ChatMessage { return m.messages }
func (m *mockChatService) Loading() bool                  { return m.loading }
func (m *mockChatService) Reset()                         { m.resets++ }

type mockUploadService struct {
	record *domain.DocumentRecord
	err    error
	state  domain.UploadState
}

func (m *mockUploadService) Upload(context.Context, string) (*domain.DocumentRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.record == nil {
		return nil, errors.New("not configured")
	}
	return m.record, nil
}
func (m *mockUploadService) State() domain.UploadState { return m.state }
func (m *mockUploadService) Filename() string          { return "" }
func (m *mockUploadService) Err() error                { return m.err }

type mockHistoryService struct {
	exchanges []domain.Exchange
	err       error
	listedPK  int64
}

func (m *mockHistoryService) List(_ context.Context, pk int64) ([]domain.Exchange, error) {
	m.listedPK = pk
	if m.err != nil {
		return nil, m.err
	}
	return m.exchanges, nil
}

func (m *mockHistoryService) Purge(context.Context, int64) error { return nil }

func validPorts() *Ports {
	return &Ports{
		Record: &mockRecordService{},
		Chat:   &mockChatService{},
		Upload: &mockUploadService{},
	}
}
