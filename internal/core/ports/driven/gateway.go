package driven

import (
	"context"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

// Gateway translates in-process operations into requests against the
// remote document service and normalises the responses. It is stateless;
// each call is an independent round trip.
type Gateway interface {
	// SubmitFile transmits the file to the processing endpoint and
	// returns the resulting DocumentRecord. Transport failures and
	// non-2xx responses are returned as *domain.UploadError carrying
	// the best-available message text. No retries are attempted.
	SubmitFile(ctx context.Context, upload domain.FileUpload) (*domain.DocumentRecord, error)

	// SubmitMessage asks a question against a previously stored record.
	// Transport failures and non-2xx responses are folded into the
	// reply's Err field; the error return is reserved for failures that
	// escape normalisation, such as request construction. Callers can
	// therefore settle a chat turn without exception handling.
	SubmitMessage(ctx context.Context, pk int64, text string) (domain.ChatReply, error)

	// Health probes the service's health endpoint.
	Health(ctx context.Context) error
}
