package middleware

import (
	"context"
	"net/http"

	"go-storefront/session"
)

// Key type for context
type contextKey string

const SessionContextKey = contextKey("session")

const sessionCookieName = "session_id"

// SessionMiddleware ensures every request carries a session: it reads the
// session cookie, creates a fresh session (and sets the cookie) when the
// cookie is missing or unknown, and attaches the session to the context.
func SessionMiddleware(sessions *session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var current session.Session

			cookie, err := r.Cookie(sessionCookieName)
			if err == nil {
				if existing, ok := sessions.Get(cookie.Value); ok {
					current = existing
				}
			}

			if current.ID == "" {
				current = sessions.New()
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookieName,
					Value:    current.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), SessionContextKey, current)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session attached by SessionMiddleware
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	current, ok := ctx.Value(SessionContextKey).(session.Session)
	return current, ok
}

// SessionID returns the id of the session attached to the context, or ""
func SessionID(ctx context.Context) string {
	current, ok := SessionFromContext(ctx)
	if !ok {
		return ""
	}
	return current.ID
}
