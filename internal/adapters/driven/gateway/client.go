// Package gateway provides the HTTP adapter for the remote document
// service: file processing, question answering, and the health probe.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
	"github.com/docchat-labs/docchat-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Gateway = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the gateway client.
type Config struct {
	// BaseURL is the service base URL (default: http://localhost:8000).
	// Trailing slashes are normalised away.
	BaseURL string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// Client talks to the remote document service over HTTP.
// It is stateless; each call is an independent round trip.
type Client struct {
	client  *http.Client
	baseURL string
}

// chatRequest is the /api/chat/ request format. The pk travels as a
// string even though records carry numeric keys.
type chatRequest struct {
	PK     string `json:"pk"`
	Search string `json:"search"`
}

// chatResponse is the /api/chat/ response format. Older servers answer
// with "answer" where newer ones use "content"; both are accepted.
type chatResponse struct {
	Content string            `json:"content"`
	Answer  string            `json:"answer"`
	Sources []domain.Citation `json:"sources"`
	Error   string            `json:"error"`
}

// NewClient creates a gateway client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// BaseURL returns the normalised service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SubmitFile transmits the file as a multipart body to /api/process and
// parses the resulting DocumentRecord. Failures are returned as
// *domain.UploadError carrying the server or transport message verbatim;
// no retry is attempted.
func (c *Client) SubmitFile(ctx context.Context, upload domain.FileUpload) (*domain.DocumentRecord, error) {
	if len(upload.Data) == 0 {
		return nil, domain.ErrEmptyFile
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", upload.Filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(upload.Data); err != nil {
		return nil, fmt.Errorf("write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/api/process",
		&body,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	logger.Debug("POST %s/api/process (%s, %d bytes)", c.baseURL, upload.Filename, upload.Size)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.UploadError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The response body is surfaced verbatim as the error message.
		return nil, &domain.UploadError{Message: readBody(resp.Body)}
	}

	var record domain.DocumentRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, &domain.UploadError{Message: "decode response: " + err.Error()}
	}

	return &record, nil
}

// SubmitMessage asks a question against a stored record via /api/chat/.
//
// Transport failures and non-2xx responses are folded into the reply's
// Err field so callers can settle a chat turn without exception
// handling. The "content"/"answer" field fallback is a compatibility
// shim for older servers and is applied here, at the boundary.
func (c *Client) SubmitMessage(ctx context.Context, pk int64, text string) (domain.ChatReply, error) {
	jsonBody, err := json.Marshal(chatRequest{
		PK:     strconv.FormatInt(pk, 10),
		Search: text,
	})
	if err != nil {
		return domain.ChatReply{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/api/chat/",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return domain.ChatReply{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logger.Debug("POST %s/api/chat/ pk=%d", c.baseURL, pk)

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.ChatReply{Err: "Failed to send message: " + err.Error()}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.ChatReply{Err: readBody(resp.Body)}, nil
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return domain.ChatReply{Err: "decode response: " + err.Error()}, nil
	}

	content := chatResp.Content
	if content == "" {
		content = chatResp.Answer
	}

	return domain.ChatReply{
		Content: content,
		Sources: chatResp.Sources,
		Err:     chatResp.Error,
	}, nil
}

// Health probes the service's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: status %d: %s", resp.StatusCode, readBody(resp.Body))
	}
	return nil
}

// readBody drains a response body into trimmed text for error messages.
func readBody(r io.Reader) string {
	data, err := io.ReadAll(r)
	if err != nil {
		return "failed to read response"
	}
	return strings.TrimSpace(string(data))
}
