package service

import (
	"context"
	"fmt"
	"strings"

	"notes-summarizer/internal/domain"
	apperrors "notes-summarizer/pkg/errors"

	"cloud.google.com/go/vertexai/genai"
)

// summaryPrompt is the fixed instruction prepended to the extracted notes.
const summaryPrompt = "Please provide a concise and clear summary of the following student notes. " +
	"Focus on the main concepts, key facts, and important details. " +
	"Organize the summary logically, perhaps using bullet points or short paragraphs. " +
	"Ensure the summary is easy to understand for a student revising the material. " +
	"Here are the notes:\n\n"

// GeminiSummarizer sends extracted notes to Gemini on Vertex AI and
// returns the generated summary.
type GeminiSummarizer struct {
	client *genai.Client
	model  string
	logger domain.Logger
}

// NewGeminiSummarizer creates a Gemini-backed summarizer. Authentication
// uses application-default credentials for the given project.
func NewGeminiSummarizer(projectID, location, model string, logger domain.Logger) (*GeminiSummarizer, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	return &GeminiSummarizer{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Summarize issues exactly one generation request and returns the response
// text unmodified. No retry, no backoff.
func (s *GeminiSummarizer) Summarize(ctx context.Context, notes string) (string, error) {
	model := s.client.GenerativeModel(s.model)
	model.SetTemperature(0.5)

	resp, err := model.GenerateContent(ctx, genai.Text(summaryPrompt+notes))
	if err != nil {
		return "", apperrors.NewSummarizationError("Error generating summary from Gemini", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.NewSummarizationError("Error generating summary from Gemini",
			fmt.Errorf("empty response from model"))
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}

	s.logger.Debug("Gemini summary generated", "model", s.model, "chars", sb.Len())
	return sb.String(), nil
}
