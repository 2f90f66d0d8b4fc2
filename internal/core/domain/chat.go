package domain

import "time"

// MessageRole distinguishes who authored a chat message.
type MessageRole string

const (
	// RoleQuestion marks a message authored by the user.
	RoleQuestion MessageRole = "question"

	// RoleAnswer marks a message authored by the system.
	RoleAnswer MessageRole = "answer"
)

// ChatMessage is one turn in the session log. The log is append-only
// and ordered by submission/response causality.
type ChatMessage struct {
	// Role tags the author of the message.
	Role MessageRole

	// Content is the literal message text.
	Content string

	// Sources carries citations attached to an answer, if any.
	Sources []Citation

	// Delay is a presentation hint used to stagger entry animation.
	// It has no semantic meaning.
	Delay time.Duration
}

// Question builds a user-authored message.
func Question(content string) ChatMessage {
	return ChatMessage{Role: RoleQuestion, Content: content}
}

// Answer builds a system-authored message.
func Answer(content string) ChatMessage {
	return ChatMessage{Role: RoleAnswer, Content: content}
}

// Citation points at a location in the source document backing an answer.
type Citation struct {
	// Page is the 1-based page number in the source document.
	Page int `json:"page"`

	// Text is the cited passage.
	Text string `json:"text"`
}

// ChatReply is the normalised result of one chat round trip.
// Exactly one of Content or Err is meaningful: a reply with Err set
// represents a transport or server failure that has already been
// converted to display text at the gateway boundary.
type ChatReply struct {
	// Content is the answer text. Always populated on success; the
	// gateway falls back to the legacy "answer" field when the server
	// omits "content".
	Content string

	// Sources are optional citations for the answer.
	Sources []Citation

	// Err holds the failure text when the round trip did not succeed.
	Err string
}

// Exchange is one completed question/answer pair, keyed to the
// document it was asked against. Exchanges form the durable chat
// history, mirroring the server-side history table.
type Exchange struct {
	// ID uniquely identifies the history entry.
	ID string

	// PK is the document record the question was asked against.
	PK int64

	// Query is the user's question text.
	Query string

	// Response is the answer text.
	Response string

	// CreatedAt is when the exchange settled.
	CreatedAt time.Time
}
