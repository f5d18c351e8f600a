package http

import (
	"net/http"

	"github.com/morem6161/bcsme/internal/security"
)

// sessionClaims extracts and validates the session cookie.
func (s *Server) sessionClaims(r *http.Request) (*security.SessionClaims, bool) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	claims, err := s.tokens.ValidateToken(cookie.Value)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// requireAuth rejects requests without a valid admin session.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.sessionClaims(r); !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
