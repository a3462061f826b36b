package handler

import (
	"net/http"

	"notes-summarizer/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Health check endpoint (no session required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"notes-summarizer"}`))
	}).Methods("GET")

	// Initialize handlers
	notesHandler := NewNotesHandler(
		container.NotesService,
		container.Logger,
		container.Config.GetMaxFileSize(),
	)

	// Every API route runs behind the session cookie middleware
	sessionMiddleware := NewSessionMiddleware(container.Logger)
	api.Use(sessionMiddleware.Middleware)

	api.HandleFunc("/session", notesHandler.GetSession).Methods("GET")
	api.HandleFunc("/documents", notesHandler.UploadDocument).Methods("POST")
	api.HandleFunc("/summaries", notesHandler.Summarize).Methods("POST")
	api.HandleFunc("/summaries/download", notesHandler.DownloadSummary).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173", // dev server
			"http://localhost:3000", // alternative dev port
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
