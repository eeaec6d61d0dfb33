package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/logibee/backoffice/internal/audit"
)

type contextKey string

const actorContextKey contextKey = "actor"

// basicAuthMiddleware validates credentials against the users table and
// stores the resolved actor identity on the request context for the audit
// trail.
func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			respondError(w, http.StatusUnauthorized, "인증이 필요합니다")
			return
		}

		valid, err := s.users.ValidateUser(r.Context(), email, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			respondError(w, http.StatusUnauthorized, "인증에 실패했습니다")
			return
		}

		actor := audit.Actor{ID: email, Name: email, Email: email}
		if user, err := s.users.GetByEmail(r.Context(), email); err == nil {
			actor = audit.Actor{
				ID:          user.ID,
				Name:        user.Name,
				Email:       user.Email,
				AccessLevel: user.AccessLevel,
				Role:        user.Role,
			}
		}

		ctx := context.WithValue(r.Context(), actorContextKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actorFrom returns the request's resolved actor; the zero Actor makes the
// recorder fall back to its system identity.
func actorFrom(ctx context.Context) audit.Actor {
	actor, _ := ctx.Value(actorContextKey).(audit.Actor)
	return actor
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *Server) requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info("request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}
