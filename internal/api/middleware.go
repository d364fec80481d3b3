package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type contextKey string

const sessionContextKey = contextKey("session")

// SessionMiddleware puts the request's session token into the context. It
// never rejects: list and create work without a prior session.
func (s *Server) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := s.sessions.FromRequest(r)
		ctx := context.WithValue(r.Context(), sessionContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetSessionFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(sessionContextKey).(string); ok {
		return token
	}
	return ""
}

// RequireMealOwnership gates the record-scoped routes. A request with no
// session cookie, or whose session does not own the addressed meal, gets 401.
// Not-found and not-owned are indistinguishable to the caller.
func (s *Server) RequireMealOwnership(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := GetSessionFromContext(r.Context())
		if token == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		mealID, err := uuid.Parse(chi.URLParam(r, "mealId"))
		if err != nil {
			http.Error(w, "Invalid meal ID format", http.StatusBadRequest)
			return
		}

		exists, err := s.store.MealExistsForSession(r.Context(), mealID, token)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if !exists {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
