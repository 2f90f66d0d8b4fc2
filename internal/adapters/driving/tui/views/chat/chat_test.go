package chat

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/tui/messages"
	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

type mockChatService struct {
	mu       sync.Mutex
	messages []domain.ChatMessage
	loading  bool
	sent     []string
}

func (m *mockChatService) Send(_ context.Context, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, text)
	m.messages = append(m.messages, domain.Question(text), domain.Answer("reply to "+text))
}

func (m *mockChatService) Messages() []domain.ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ChatMessage, len(m.messages))
	copy(out, m.messages)
	return out
}

func (m *mockChatService) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *mockChatService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = nil
}

func newTestView(svc *mockChatService) *View {
	v := NewView(nil, svc)
	v.SetDimensions(100, 40)
	return v
}

func TestView_RendersLogFromService(t *testing.T) {
	svc := &mockChatService{messages: []domain.ChatMessage{
		domain.Answer("Hello! How can I help you with this document?"),
	}}
	v := newTestView(svc)

	out := v.View()

	assert.Contains(t, out, "Assistant:")
	assert.Contains(t, out, "How can I help you")
}

func TestView_EnterDispatchesQuestion(t *testing.T) {
	svc := &mockChatService{}
	v := newTestView(svc)
	v.SetInput("what is this?")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Empty(t, v.Input())

	// The batch contains the send command; run messages until settled
	msg := collectSettled(t, cmd)
	assert.IsType(t, messages.TurnSettled{}, msg)
	assert.Equal(t, []string{"what is this?"}, svc.sent)
}

func TestView_EnterWithBlankInputIsNoop(t *testing.T) {
	svc := &mockChatService{}
	v := newTestView(svc)
	v.SetInput("   ")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, svc.sent)
}

func TestView_EnterWhileLoadingIsNoop(t *testing.T) {
	svc := &mockChatService{loading: true}
	v := newTestView(svc)
	v.SetInput("queued?")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, svc.sent)
}

func TestView_RendersSources(t *testing.T) {
	answer := domain.Answer("grounded")
	answer.Sources = []domain.Citation{{Page: 4, Text: "the cited passage"}}
	svc := &mockChatService{messages: []domain.ChatMessage{answer}}
	v := newTestView(svc)

	out := v.View()

	assert.Contains(t, out, "[p.4] the cited passage")
}

func TestView_TabGoesToDocument(t *testing.T) {
	v := newTestView(&mockChatService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyTab})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewDocument, changed.View)
}

func TestView_ShowsSpinnerWhileLoading(t *testing.T) {
	svc := &mockChatService{loading: true}
	v := newTestView(svc)

	assert.Contains(t, v.View(), "thinking...")
}

func TestView_RendersReplayedHistoryAboveLog(t *testing.T) {
	svc := &mockChatService{messages: []domain.ChatMessage{
		domain.Answer("Hello! How can I help you with this document?"),
	}}
	v := newTestView(svc)
	v.SetHistory([]domain.Exchange{
		{PK: 3, Query: "earlier question", Response: "earlier answer"},
	})

	out := v.View()
	assert.Contains(t, out, "Earlier:")
	assert.Contains(t, out, "earlier question")
	assert.Contains(t, out, "earlier answer")
}

func TestView_ResetClearsReplayedHistory(t *testing.T) {
	v := newTestView(&mockChatService{})
	v.SetHistory([]domain.Exchange{{PK: 3, Query: "earlier question", Response: "earlier answer"}})

	v.Reset()

	assert.NotContains(t, v.View(), "earlier question")
}

// collectSettled executes a possibly batched command and returns the
// TurnSettled message it produces.
func collectSettled(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()

	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case messages.TurnSettled:
			return msg
		}
	}

	t.Fatal("no TurnSettled message produced")
	return nil
}
