package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
	"github.com/docchat-labs/docchat-cli/internal/logger"
)

// Ensure ChatService implements the interfaces.
var (
	_ driving.ChatService    = (*ChatService)(nil)
	_ driving.HistoryService = (*ChatService)(nil)
)

// Greeting seeds every fresh session log.
const Greeting = "Hello! How can I help you with this document?"

// FallbackAnswer is appended when the dispatch itself fails, before
// the gateway could normalise the failure into a reply.
const FallbackAnswer = "Sorry, there was an error processing your request."

// ChatService owns the ordered message log for the active document.
// Questions are appended optimistically before the network round trip;
// exactly one answer follows per send, in submission order.
type ChatService struct {
	gateway driven.Gateway
	records driving.RecordService
	history driven.HistoryStore

	mu       sync.RWMutex
	messages []domain.ChatMessage
	loading  bool
}

// NewChatService creates a chat service with a greeting-seeded log.
// history may be nil; exchanges are then not recorded.
func NewChatService(
	gateway driven.Gateway,
	records driving.RecordService,
	history driven.HistoryStore,
) *ChatService {
	return &ChatService{
		gateway:  gateway,
		records:  records,
		history:  history,
		messages: []domain.ChatMessage{domain.Answer(Greeting)},
	}
}

// Send runs one chat turn against the active document.
//
// The question is appended synchronously before any network activity,
// so callers observing the log see the user's input immediately. After
// the round trip settles exactly one answer is appended: the reply
// content, an "Error: ..." surrogate for a normalised failure, or the
// fixed fallback when the dispatch itself failed. The loading flag is
// cleared on every exit path.
//
// Blank text, a missing active document, or an in-flight turn make
// Send a no-op: the log and loading state are left untouched.
func (s *ChatService) Send(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	record := s.records.Current()
	if record == nil {
		logger.Debug("Send ignored: no active document")
		return
	}

	s.mu.Lock()
	if s.loading {
		// One turn at a time; re-entry is rejected rather than queued.
		s.mu.Unlock()
		logger.Debug("Send ignored: turn already in flight")
		return
	}
	s.messages = append(s.messages, domain.Question(text))
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	logger.Debug("Dispatching question for pk=%d: %q", record.PK, text)
	reply, err := s.gateway.SubmitMessage(ctx, record.PK, text)

	answer := s.settle(reply, err)

	s.mu.Lock()
	s.messages = append(s.messages, answer)
	s.mu.Unlock()

	if err == nil && reply.Err == "" {
		s.record(ctx, record.PK, text, answer.Content)
	}
}

// settle converts the round trip outcome into the single answer message.
func (s *ChatService) settle(reply domain.ChatReply, err error) domain.ChatMessage {
	if err != nil {
		logger.Warn("Chat dispatch failed: %v", err)
		return domain.Answer(FallbackAnswer)
	}
	if reply.Err != "" {
		return domain.Answer("Error: " + reply.Err)
	}

	answer := domain.Answer(reply.Content)
	answer.Sources = reply.Sources
	return answer
}

// record appends the settled exchange to the durable history.
// History failures are logged and never surface into the session.
func (s *ChatService) record(ctx context.Context, pk int64, query, response string) {
	if s.history == nil {
		return
	}

	err := s.history.Append(ctx, domain.Exchange{
		ID:        uuid.NewString(),
		PK:        pk,
		Query:     query,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		logger.Warn("Recording exchange: %v", err)
	}
}

// Messages returns a snapshot of the session log in append order.
func (s *ChatService) Messages() []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Loading reports whether a round trip is in flight.
func (s *ChatService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Reset discards the log and re-seeds it with the greeting.
func (s *ChatService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = []domain.ChatMessage{domain.Answer(Greeting)}
}

// List returns past exchanges for a document record, oldest first.
// Without a history store the list is empty.
func (s *ChatService) List(ctx context.Context, pk int64) ([]domain.Exchange, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.ListByRecord(ctx, pk)
}

// Purge removes all stored exchanges for a document record.
// Without a history store it is a no-op.
func (s *ChatService) Purge(ctx context.Context, pk int64) error {
	if s.history == nil {
		return nil
	}
	return s.history.DeleteByRecord(ctx, pk)
}
