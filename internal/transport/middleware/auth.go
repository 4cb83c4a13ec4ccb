package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/creditodds/creditodds-api/internal/auth"
	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/pkg/ctxutil"
)

type identityVerifier interface {
	Verify(ctx context.Context, token string) (auth.Identity, error)
}

type adminAuthorizer interface {
	GrantedBy(subject string, claims map[string]any) (string, bool)
}

// Auth resolves the bearer token into a subject id and admin flag.
// A request without a token continues anonymously; a token that fails
// verification is rejected with 401.
func Auth(verifier identityVerifier, authorizer adminAuthorizer, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", slog.String("error", err.Error()))
				writeError(w, http.StatusUnauthorized, domain.KindUnauthorized, "unauthorized")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), id.Subject)
			if strategy, ok := authorizer.GrantedBy(id.Subject, id.Claims); ok {
				ctx = ctxutil.WithAdmin(ctx, true)
				logger.DebugContext(ctx, "admin granted",
					slog.String("user_id", id.Subject),
					slog.String("strategy", strategy),
				)
			}
			annotateUser(w, id.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
