package config

import (
	"notes-summarizer/internal/domain"
	"notes-summarizer/internal/repository"
	"notes-summarizer/internal/service"
	"notes-summarizer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config       domain.Config
	Logger       domain.Logger
	SessionStore domain.SessionStore
	NotesService domain.NotesService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	sessionStore := repository.NewSessionStore()

	extractors := []domain.TextExtractor{
		service.NewPDFExtractor(appLogger),
		service.NewDocxExtractor(appLogger),
	}

	// Summarization is optional: without a configured Google Cloud project
	// the service still extracts text, it just cannot summarize.
	var summarizer domain.Summarizer
	if config.GetGoogleProject() == "" {
		appLogger.Warn("Gemini credential not found, summarization disabled. Set GOOGLE_CLOUD_PROJECT to enable it.")
	} else {
		s, err := service.NewGeminiSummarizer(
			config.GetGoogleProject(),
			config.GetGoogleLocation(),
			config.GetGeminiModel(),
			appLogger,
		)
		if err != nil {
			appLogger.Error("Failed to initialize Gemini client, summarization disabled", err)
		} else {
			summarizer = s
		}
	}

	notesService := service.NewNotesService(extractors, summarizer, sessionStore, appLogger)

	return &Container{
		Config:       config,
		Logger:       appLogger,
		SessionStore: sessionStore,
		NotesService: notesService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
