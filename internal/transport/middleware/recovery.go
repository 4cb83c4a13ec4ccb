package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/pkg/ctxutil"
)

// Recovery turns a panic into a logged stack trace and a 500 response with
// the generic internal error body.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				switch rec := recover(); rec {
				case nil:
					return
				case http.ErrAbortHandler:
					// net/http relies on this panic to abort the response.
					panic(rec)
				default:
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", rec),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())),
					)
				}
				writeError(w, http.StatusInternalServerError, domain.KindInternal, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
