package middleware

import (
	"net/http"

	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/pkg/ctxutil"
)

// RequireUser rejects anonymous requests with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, domain.KindUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects anonymous requests with 401 and signed-in
// non-admins with 403. It must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, domain.KindUnauthorized, "unauthorized")
			return
		}
		if !ctxutil.IsAdmin(r.Context()) {
			writeError(w, http.StatusForbidden, domain.KindForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
