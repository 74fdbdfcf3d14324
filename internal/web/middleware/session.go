package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/applicants/internal/core"
)

type sessionKey struct{}

// Sessions looks up live visitor sessions.
type Sessions interface {
	Session(id string) (*core.Session, bool)
}

// RequireSession returns middleware that admits only requests carrying a
// cookie named cookieName whose value is a live session ID. Other requests
// are passed to deny. Admitted requests can read the ID with SessionID.
func RequireSession(cookieName string, sessions Sessions, deny http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookieName)
			if err != nil || c.Value == "" {
				deny(w, r)
				return
			}

			if _, ok := sessions.Session(c.Value); !ok {
				slog.Debug("session: unknown or expired session",
					"path", r.URL.Path,
					"method", r.Method,
					"remote_addr", r.RemoteAddr,
				)
				deny(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, c.Value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID returns the session admitted by RequireSession, or "".
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
