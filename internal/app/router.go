package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/creditodds/creditodds-api/internal/auth"
	"github.com/creditodds/creditodds-api/internal/config"
	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/internal/transport/dataloader"
	"github.com/creditodds/creditodds-api/internal/transport/middleware"
	"github.com/creditodds/creditodds-api/internal/transport/rest"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health     *rest.HealthHandler
	Cards      *rest.CardHandler
	Records    *rest.RecordHandler
	Referrals  *rest.ReferralHandler
	Engagement *rest.EngagementHandler
	Wallet     *rest.WalletHandler
	Profile    *rest.ProfileHandler
	Audit      *rest.AuditHandler
}

type identityVerifier interface {
	Verify(ctx context.Context, token string) (auth.Identity, error)
}

type adminAuthorizer interface {
	GrantedBy(subject string, claims map[string]any) (string, bool)
}

type statsCounter interface {
	Counts(ctx context.Context, ids []int64) (map[int64]domain.ReferralStats, error)
}

// RouterDeps are the cross-cutting collaborators of the middleware chain.
type RouterDeps struct {
	Logger       *slog.Logger
	CORS         config.CORSConfig
	Verifier     identityVerifier
	Authorizer   adminAuthorizer
	StatsCounter statsCounter
	Limiter      *middleware.RateLimiter
	WritesPerMin int
}

// NewRouter mounts all routes behind the global middleware chain:
// Recovery, RequestID, ClientIP, Logger, CORS, Auth, DataLoader.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	user := middleware.Chain(middleware.RequireUser)
	admin := middleware.Chain(middleware.RequireAdmin)
	write := middleware.Chain(middleware.RequireUser, deps.Limiter.Limit(deps.WritesPerMin))
	adminWrite := middleware.Chain(middleware.RequireAdmin, deps.Limiter.Limit(deps.WritesPerMin))
	public := deps.Limiter.Limit(deps.WritesPerMin)

	// Probes.
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Cards.
	mux.HandleFunc("GET /cards", h.Cards.List)
	mux.HandleFunc("GET /card", h.Cards.Get)
	mux.HandleFunc("GET /graphs", h.Cards.Graphs)

	// Records.
	mux.HandleFunc("GET /records/rules", h.Records.Rules)
	mux.Handle("GET /records", user(http.HandlerFunc(h.Records.ListMine)))
	mux.Handle("POST /records", write(http.HandlerFunc(h.Records.Submit)))
	mux.Handle("DELETE /records", write(http.HandlerFunc(h.Records.Delete)))

	// Referrals.
	mux.HandleFunc("GET /referrals/random", h.Referrals.Random)
	mux.Handle("GET /referrals", user(http.HandlerFunc(h.Referrals.ListMine)))
	mux.Handle("POST /referrals", write(http.HandlerFunc(h.Referrals.Submit)))
	mux.Handle("DELETE /referrals", write(http.HandlerFunc(h.Referrals.Delete)))
	mux.Handle("POST /referral-stats", public(http.HandlerFunc(h.Engagement.Record)))

	// Wallet and profile.
	mux.Handle("GET /wallet", user(http.HandlerFunc(h.Wallet.List)))
	mux.Handle("POST /wallet", write(http.HandlerFunc(h.Wallet.Add)))
	mux.Handle("DELETE /wallet", write(http.HandlerFunc(h.Wallet.Delete)))
	mux.Handle("GET /profile", user(http.HandlerFunc(h.Profile.Get)))

	// Admin.
	mux.Handle("GET /admin/records", admin(http.HandlerFunc(h.Records.AdminList)))
	mux.Handle("POST /admin/records/review", adminWrite(http.HandlerFunc(h.Records.Review)))
	mux.Handle("DELETE /admin/records", adminWrite(http.HandlerFunc(h.Records.AdminDelete)))
	mux.Handle("GET /admin/referrals", admin(http.HandlerFunc(h.Referrals.AdminList)))
	mux.Handle("POST /admin/referrals/approve", adminWrite(http.HandlerFunc(h.Referrals.Approve)))
	mux.Handle("PATCH /admin/referrals", adminWrite(http.HandlerFunc(h.Referrals.UpdateLink)))
	mux.Handle("DELETE /admin/referrals", adminWrite(http.HandlerFunc(h.Referrals.AdminDelete)))
	mux.Handle("GET /admin/audit-log", admin(http.HandlerFunc(h.Audit.List)))

	return middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
		middleware.ClientIP,
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Verifier, deps.Authorizer, deps.Logger),
		dataloader.Middleware(deps.StatsCounter),
	)(mux)
}
