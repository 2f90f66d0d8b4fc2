package upload

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/messages"
	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

type mockUploadService struct {
	record *domain.DocumentRecord
	err    error
	state  domain.UploadState
	calls  int
}

func (m *mockUploadService) Upload(context.Context, string) (*domain.DocumentRecord, error) {
	m.calls++
	return m.record, m.err
}
func (m *mockUploadService) State() domain.UploadState { return m.state }
func (m *mockUploadService) Filename() string          { return "a.md" }
func (m *mockUploadService) Err() error                { return m.err }

func TestView_EnterSubmitsUpload(t *testing.T) {
	svc := &mockUploadService{record: &domain.DocumentRecord{PK: 1}}
	v := NewView(nil, svc)
	v.SetPath("/tmp/a.md")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.True(t, v.Uploading())

	msg := cmd()
	finished, ok := msg.(messages.UploadFinished)
	require.True(t, ok)
	assert.NoError(t, finished.Err)
	assert.Equal(t, int64(1), finished.Record.PK)
	assert.Equal(t, 1, svc.calls)
}

func TestView_EnterWithEmptyPathIsNoop(t *testing.T) {
	svc := &mockUploadService{}
	v := NewView(nil, svc)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, v.Uploading())
	assert.Zero(t, svc.calls)
}

func TestView_FailureIsReenterable(t *testing.T) {
	svc := &mockUploadService{err: errors.New("unsupported type")}
	v := NewView(nil, svc)
	v.SetPath("/tmp/a.exe")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	v, _ = v.Update(cmd())

	assert.False(t, v.Uploading())
	require.Error(t, v.Err())
	assert.Contains(t, v.Err().Error(), "unsupported type")

	// A second attempt goes through
	svc.err = nil
	svc.record = &domain.DocumentRecord{PK: 2}
	v.SetPath("/tmp/b.md")
	v, cmd = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, v.Uploading())
}

func TestView_KeysIgnoredWhileUploading(t *testing.T) {
	svc := &mockUploadService{record: &domain.DocumentRecord{PK: 1}}
	v := NewView(nil, svc)
	v.SetPath("/tmp/a.md")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, v.Uploading())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, 1, svc.calls)
}

func TestView_SuccessClearsError(t *testing.T) {
	svc := &mockUploadService{}
	v := NewView(nil, svc)

	v, _ = v.Update(messages.UploadFinished{Err: errors.New("boom")})
	require.Error(t, v.Err())

	v, _ = v.Update(messages.UploadFinished{Record: &domain.DocumentRecord{PK: 1}})

	assert.NoError(t, v.Err())
}

func TestView_QWithEmptyInputQuits(t *testing.T) {
	v := NewView(nil, &mockUploadService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, messages.Quit{}, cmd())
}

func TestView_RendersErrorState(t *testing.T) {
	v := NewView(nil, &mockUploadService{})
	v.SetDimensions(100, 40)

	v, _ = v.Update(messages.UploadFinished{Err: errors.New("too large")})

	assert.Contains(t, v.View(), "too large")
}
