package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"notes-summarizer/internal/domain"
)

const downloadPath = "/api/v1/summaries/download"

// NotesHandler handles HTTP requests for the notes workflow
type NotesHandler struct {
	service     domain.NotesService
	logger      domain.Logger
	maxFileSize int64
}

// NewNotesHandler creates a new notes handler instance
func NewNotesHandler(service domain.NotesService, logger domain.Logger, maxFileSize int64) *NotesHandler {
	return &NotesHandler{
		service:     service,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// sessionResponse is the rendered view of the current session state.
type sessionResponse struct {
	UploadedFileName  string `json:"uploaded_file_name,omitempty"`
	HasNotes          bool   `json:"has_notes"`
	Summary           string `json:"summary,omitempty"`
	SummarizerEnabled bool   `json:"summarizer_enabled"`
	DownloadURL       string `json:"download_url,omitempty"`
	Message           string `json:"message,omitempty"`
}

func (h *NotesHandler) renderState(state domain.SessionState) sessionResponse {
	resp := sessionResponse{
		UploadedFileName:  state.FileName,
		HasNotes:          state.HasNotes(),
		Summary:           state.Summary,
		SummarizerEnabled: h.service.SummarizerEnabled(),
	}
	if state.HasSummary() {
		resp.DownloadURL = downloadPath
	}
	if !state.HasNotes() && !state.HasSummary() {
		resp.Message = "Please upload your notes (PDF or Word) to begin summarization."
	}
	return resp
}

// GetSession returns the rendered state of the current session
func (h *NotesHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionIDFromContext(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Session not found in context")
		return
	}

	writeJSON(w, http.StatusOK, h.renderState(h.service.State(sessionID)))
}

// UploadDocument handles document upload and text extraction
func (h *NotesHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionIDFromContext(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Session not found in context")
		return
	}

	// Validate file is present
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	// Sanitize filename (strip any path components)
	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if originalName == "" || originalName == "." || originalName == string(filepath.Separator) {
		originalName = "document"
	}

	// Validate extension (strict allow-list)
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext != ".pdf" && ext != ".docx" {
		writeError(w, http.StatusBadRequest, "Unsupported file type. Allowed: PDF (.pdf), Word Document (.docx).")
		return
	}

	// Validate file size
	if header.Size > h.maxFileSize {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("File too large. Maximum single file size is %dMB.", h.maxFileSize>>20))
		return
	}

	// The declared format wins; the extension is the fallback.
	format, err := domain.ParseFormat(r.FormValue("format"))
	if err != nil {
		format, err = domain.FormatFromFileName(originalName)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Unsupported document format")
			return
		}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	state, err := h.service.Upload(r.Context(), sessionID, domain.UploadedDocument{
		FileName: originalName,
		Format:   format,
		Data:     data,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}

	resp := h.renderState(state)
	resp.Message = fmt.Sprintf("%s uploaded and text extracted successfully! Now, click 'Summarize Notes' to get your summary!", state.FileName)
	writeJSON(w, http.StatusCreated, resp)
}

// Summarize runs one summarization over the session's extracted notes
func (h *NotesHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionIDFromContext(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Session not found in context")
		return
	}

	state, err := h.service.Summarize(r.Context(), sessionID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.renderState(state))
}

// DownloadSummary serves the stored summary as a plain-text attachment
func (h *NotesHandler) DownloadSummary(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionIDFromContext(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Session not found in context")
		return
	}

	state := h.service.State(sessionID)
	if !state.HasSummary() {
		writeError(w, http.StatusNotFound, "No summary available. Please summarize your notes first.")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", state.DownloadFileName()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(state.Summary))
}
