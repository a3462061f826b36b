package service

import (
	"context"

	"notes-summarizer/internal/domain"
	apperrors "notes-summarizer/pkg/errors"
)

// NotesService orchestrates the upload-extract-summarize workflow over
// per-session state.
type NotesService struct {
	extractors map[domain.DocumentFormat]domain.TextExtractor
	summarizer domain.Summarizer
	sessions   domain.SessionStore
	logger     domain.Logger
}

// NewNotesService creates a new notes service instance. A nil summarizer
// means summarization is disabled (no credential configured).
func NewNotesService(
	extractors []domain.TextExtractor,
	summarizer domain.Summarizer,
	sessions domain.SessionStore,
	logger domain.Logger,
) *NotesService {
	byFormat := make(map[domain.DocumentFormat]domain.TextExtractor, len(extractors))
	for _, ex := range extractors {
		byFormat[ex.Format()] = ex
	}

	return &NotesService{
		extractors: byFormat,
		summarizer: summarizer,
		sessions:   sessions,
		logger:     logger,
	}
}

// Upload extracts text from the uploaded bytes using the extractor for the
// declared format. On success the session's notes text and file name are
// replaced; on any failure the prior session state is left untouched.
func (s *NotesService) Upload(ctx context.Context, sessionID string, doc domain.UploadedDocument) (domain.SessionState, error) {
	extractor, ok := s.extractors[doc.Format]
	if !ok {
		return s.sessions.Get(sessionID), apperrors.NewValidationError("Unsupported document format", string(doc.Format))
	}

	text, err := extractor.Extract(doc.Data)
	if err != nil {
		s.logger.Error("Text extraction failed", err, "file", doc.FileName, "format", doc.Format)
		return s.sessions.Get(sessionID), err
	}
	if text == "" {
		s.logger.Warn("No text extracted from document", "file", doc.FileName, "format", doc.Format)
		return s.sessions.Get(sessionID), apperrors.NewExtractionError(
			"Could not extract text from the document. Please try another file.", nil)
	}

	s.sessions.Update(sessionID, func(state *domain.SessionState) {
		// The previous summary stays visible until the next summarize
		// action overwrites it.
		state.NotesText = text
		state.FileName = doc.FileName
	})

	s.logger.Info("Document uploaded and text extracted", "file", doc.FileName, "format", doc.Format, "chars", len(text))
	return s.sessions.Get(sessionID), nil
}

// Summarize runs one summarization call over the session's extracted text.
// A failed call clears the stored summary; precondition failures leave the
// session untouched.
func (s *NotesService) Summarize(ctx context.Context, sessionID string) (domain.SessionState, error) {
	state := s.sessions.Get(sessionID)

	// The credential check comes first: without it summarization is
	// disabled no matter what was uploaded.
	if s.summarizer == nil {
		return state, apperrors.NewMissingCredentialError(
			"Cannot summarize without a Gemini credential. Please check your setup.")
	}
	if !state.HasNotes() {
		return state, apperrors.NewEmptyInputError(
			"Please upload a document first before attempting to summarize.")
	}

	summary, err := s.summarizer.Summarize(ctx, state.NotesText)
	if err != nil {
		s.logger.Error("Summarization failed", err, "file", state.FileName)
		s.sessions.Update(sessionID, func(state *domain.SessionState) {
			state.Summary = ""
		})
		return s.sessions.Get(sessionID), err
	}

	s.sessions.Update(sessionID, func(state *domain.SessionState) {
		state.Summary = summary
	})

	s.logger.Info("Notes summarized", "file", state.FileName, "summary_chars", len(summary))
	return s.sessions.Get(sessionID), nil
}

// State returns a snapshot of the session for rendering.
func (s *NotesService) State(sessionID string) domain.SessionState {
	return s.sessions.Get(sessionID)
}

// SummarizerEnabled reports whether a summarization backend is configured.
func (s *NotesService) SummarizerEnabled() bool {
	return s.summarizer != nil
}
