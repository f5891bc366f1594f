package middleware

import (
	"context"
	"net/http"

	"github.com/blackpdx/ggokka-ot/internal/web/session"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"
)

// GetSession retrieves the app session from the request context.
// Returns nil outside the AppSession middleware.
func GetSession(ctx context.Context) *session.Session {
	s, _ := ctx.Value(sessionContextKey).(*session.Session)
	return s
}

// AppSession returns middleware that loads the browser's session from its
// cookie, starting a new one on the splash screen when there is none.
func AppSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := sessionFromCookie(r, store)
			if s == nil {
				s = store.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     session.CookieName,
					Value:    s.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromCookie(r *http.Request, store *session.Store) *session.Session {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return nil
	}

	s, ok := store.Get(cookie.Value)
	if !ok {
		return nil
	}
	return s
}
