package handler

import (
	"context"
	"net/http"

	"notes-summarizer/internal/domain"

	"github.com/google/uuid"
)

const sessionCookieName = "session_id"

// SessionMiddleware assigns every browser a session cookie so the notes
// workflow state can be kept per session.
type SessionMiddleware struct {
	logger domain.Logger
}

// NewSessionMiddleware creates a new session middleware instance
func NewSessionMiddleware(logger domain.Logger) *SessionMiddleware {
	return &SessionMiddleware{logger: logger}
}

// Middleware reads the session cookie, minting a new session ID when the
// cookie is absent, and puts the ID into the request context.
func (m *SessionMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			sessionID = cookie.Value
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			m.logger.Debug("New session started", "session_id", sessionID)
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
