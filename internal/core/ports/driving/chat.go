package driving

import (
	"context"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

// ChatService owns the ordered message log for the active document.
type ChatService interface {
	// Send runs one chat turn: it appends the question to the log
	// immediately, dispatches it through the gateway, and appends
	// exactly one answer once the round trip settles. Blank text, a
	// missing active document, or an in-flight turn make it a no-op.
	// Send blocks until the turn settles; callers wanting the
	// optimistic question visible run it on a separate goroutine and
	// observe the log through Messages.
	Send(ctx context.Context, text string)

	// Messages returns a snapshot of the session log in append order.
	Messages() []domain.ChatMessage

	// Loading reports whether a round trip is in flight.
	Loading() bool

	// Reset discards the log and re-seeds it with the greeting.
	// Called when the active document changes.
	Reset()
}

// HistoryService exposes the durable chat history.
type HistoryService interface {
	// List returns past exchanges for a document record, oldest first.
	List(ctx context.Context, pk int64) ([]domain.Exchange, error)

	// Purge removes all stored exchanges for a document record.
	Purge(ctx context.Context, pk int64) error
}
