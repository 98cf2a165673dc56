package web

// context.go carries the per-request session through the request
// context. The withSession middleware guarantees every handler
// downstream finds a live session here.

import (
	"context"
	"net/http"

	"github.com/crashlens/crashlens/internal/core"
)

type contextKey string

const sessionContextKey contextKey = "session"

// sessionCookieName is the browser cookie holding the session ID.
const sessionCookieName = "crashlens_session"

// withSession ensures the request has a live session: an existing
// valid cookie resolves to its session, anything else mints a new one
// and sets the cookie.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *core.Session

		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			if existing, ok := s.service.Session(cookie.Value); ok {
				sess = existing
			}
		}

		if sess == nil {
			sess = s.service.OpenSession()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the request's session. The middleware always
// installs one, so a miss means a programming error upstream.
func sessionFrom(ctx context.Context) (*core.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*core.Session)
	return sess, ok
}
