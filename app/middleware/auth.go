package middleware

import (
	"context"
	"net/http"

	"github.com/zee467/twitter-clone/app/session"
)

type ctxKey int

const ClaimsKey ctxKey = 1

type Auth struct{ Sessions *session.Manager }

// RequireSession guards a page behind a live session. Browsers land back on
// the login page instead of getting a bare 401.
func (a *Auth) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := a.Sessions.Current(r)
		if claims == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
