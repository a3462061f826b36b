package domain

import (
	"path/filepath"
	"strings"
)

// SessionState holds the per-session notes workflow state. It lives in
// memory only and is never persisted across sessions.
type SessionState struct {
	// NotesText is the full text extracted from the last successful upload.
	NotesText string `json:"-"`

	// Summary is the last generated summary. It may have been computed from
	// a previously uploaded document; it stays visible until the next
	// summarize action overwrites it.
	Summary string `json:"summary,omitempty"`

	// FileName is the original name of the last successfully uploaded file.
	FileName string `json:"uploaded_file_name,omitempty"`
}

// HasNotes reports whether a successful extraction has happened.
func (s *SessionState) HasNotes() bool {
	return s.NotesText != ""
}

// HasSummary reports whether a summary is available for display/download.
func (s *SessionState) HasSummary() bool {
	return s.Summary != ""
}

// DownloadFileName derives the name of the downloadable summary file from
// the uploaded file name, e.g. "biology101.pdf" -> "summarized_notes_biology101.txt".
func (s *SessionState) DownloadFileName() string {
	base := strings.TrimSuffix(s.FileName, filepath.Ext(s.FileName))
	return "summarized_notes_" + base + ".txt"
}
