package memory

import (
	"context"
	"sync"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu        sync.Mutex
	exchanges []domain.Exchange
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Append stores one completed exchange.
func (s *HistoryStore) Append(_ context.Context, exchange domain.Exchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exchanges = append(s.exchanges, exchange)
	return nil
}

// ListByRecord returns all exchanges for a record, oldest first.
func (s *HistoryStore) ListByRecord(_ context.Context, pk int64) ([]domain.Exchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Exchange
	for _, ex := range s.exchanges {
		if ex.PK == pk {
			out = append(out, ex)
		}
	}
	return out, nil
}

// DeleteByRecord removes all exchanges for a record.
func (s *HistoryStore) DeleteByRecord(_ context.Context, pk int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.exchanges[:0]
	for _, ex := range s.exchanges {
		if ex.PK != pk {
			kept = append(kept, ex)
		}
	}
	s.exchanges = kept
	return nil
}

// Close is a no-op for the in-memory store.
func (s *HistoryStore) Close() error {
	return nil
}
