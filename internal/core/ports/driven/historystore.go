package driven

import (
	"context"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

// HistoryStore persists completed chat exchanges.
// Backed by SQLite, mirroring the server-side history table.
type HistoryStore interface {
	// Append stores one completed exchange.
	Append(ctx context.Context, exchange domain.Exchange) error

	// ListByRecord returns all exchanges for a document record,
	// oldest first.
	ListByRecord(ctx context.Context, pk int64) ([]domain.Exchange, error)

	// DeleteByRecord removes all exchanges for a document record.
	DeleteByRecord(ctx context.Context, pk int64) error

	// Close releases the underlying storage.
	Close() error
}
