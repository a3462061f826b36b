package domain

import "context"

// TextExtractor converts raw file bytes of one format into plain text.
// Implementations must not panic on malformed input; any decoding failure
// is returned as an error together with an empty string.
type TextExtractor interface {
	Extract(data []byte) (string, error)
	Format() DocumentFormat
}

// Summarizer produces a summary for previously extracted notes text.
type Summarizer interface {
	Summarize(ctx context.Context, notes string) (string, error)
}

// SessionStore holds per-session state in memory. Get returns a snapshot so
// callers never share the stored struct; Update applies a mutation under the
// store's lock.
type SessionStore interface {
	Get(sessionID string) SessionState
	Update(sessionID string, fn func(*SessionState))
}

// NotesService defines the use-case operations for the notes workflow.
type NotesService interface {
	Upload(ctx context.Context, sessionID string, doc UploadedDocument) (SessionState, error)
	Summarize(ctx context.Context, sessionID string) (SessionState, error)
	State(sessionID string) SessionState
	SummarizerEnabled() bool
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetGoogleProject() string
	GetGoogleLocation() string
	GetGeminiModel() string
}
