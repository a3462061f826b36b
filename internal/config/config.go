package config

import (
	"os"
	"strconv"

	"notes-summarizer/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	MaxFileSize    int64
	LogLevel       string
	GoogleProject  string
	GoogleLocation string
	GeminiModel    string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:     getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", 15*1024*1024), // 15MB default
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		GoogleProject:  getEnvOrDefault("GOOGLE_CLOUD_PROJECT", ""),
		GoogleLocation: getEnvOrDefault("GOOGLE_CLOUD_LOCATION", "us-central1"),
		GeminiModel:    getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash-001"),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetGoogleProject returns the Google Cloud project used for Gemini calls.
// An empty project disables summarization.
func (c *AppConfig) GetGoogleProject() string {
	return c.GoogleProject
}

// GetGoogleLocation returns the Vertex AI location
func (c *AppConfig) GetGoogleLocation() string {
	return c.GoogleLocation
}

// GetGeminiModel returns the generative model identifier
func (c *AppConfig) GetGeminiModel() string {
	return c.GeminiModel
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
