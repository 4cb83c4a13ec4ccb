package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creditodds/creditodds-api/internal/adapter/cache"
	"github.com/creditodds/creditodds-api/internal/adapter/catalog"
	"github.com/creditodds/creditodds-api/internal/adapter/postgres"
	auditrepo "github.com/creditodds/creditodds-api/internal/adapter/postgres/audit"
	cardrepo "github.com/creditodds/creditodds-api/internal/adapter/postgres/card"
	recordrepo "github.com/creditodds/creditodds-api/internal/adapter/postgres/record"
	referralrepo "github.com/creditodds/creditodds-api/internal/adapter/postgres/referral"
	"github.com/creditodds/creditodds-api/internal/adapter/postgres/referralstat"
	walletrepo "github.com/creditodds/creditodds-api/internal/adapter/postgres/wallet"
	"github.com/creditodds/creditodds-api/internal/auth"
	"github.com/creditodds/creditodds-api/internal/config"
	"github.com/creditodds/creditodds-api/internal/service/audit"
	"github.com/creditodds/creditodds-api/internal/service/card"
	"github.com/creditodds/creditodds-api/internal/service/engagement"
	"github.com/creditodds/creditodds-api/internal/service/profile"
	"github.com/creditodds/creditodds-api/internal/service/record"
	"github.com/creditodds/creditodds-api/internal/service/referral"
	"github.com/creditodds/creditodds-api/internal/service/wallet"
	"github.com/creditodds/creditodds-api/internal/transport/middleware"
	"github.com/creditodds/creditodds-api/internal/transport/rest"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects the
// store and cache, builds services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// The health handler and catalog client take nil interfaces when redis
	// is not configured.
	var (
		catalogCache *cache.Client
		healthCache  pinger
	)
	if cfg.Redis.Enabled() {
		catalogCache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
		defer catalogCache.Close()
		healthCache = catalogCache
	}
	catalogClient := newCatalogClient(cfg.Catalog, catalogCache, logger)
	verifier := auth.NewFirebaseVerifier(cfg.Auth.FirebaseProjectID, cfg.Auth.CertsURL, logger)

	st := newStack(cfg, logger, pool, catalogClient, healthCache, verifier)
	go st.emitter.Run(ctx)
	defer st.close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      st.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// stack is the wired application behind the HTTP server.
type stack struct {
	handler http.Handler
	cards   *card.Service
	emitter *audit.Emitter
	limiter *middleware.RateLimiter
}

// newStack builds repositories, services and the router. The caller must
// start emitter.Run and call close once the server has stopped.
func newStack(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	catalogClient *catalog.Client,
	healthCache pinger,
	verifier identityVerifier,
) *stack {
	// Repositories.
	txManager := postgres.NewTxManager(pool)
	cards := cardrepo.New(pool)
	records := recordrepo.New(pool)
	referrals := referralrepo.New(pool)
	stats := referralstat.New(pool)
	walletCards := walletrepo.New(pool)

	emitter := audit.NewEmitter(logger, auditrepo.New(pool), cfg.Audit.BufferSize)

	// Services.
	cardService := card.NewService(logger, catalogClient, cards, records, txManager)
	recordService := record.NewService(logger, records, cards, emitter)
	referralService := referral.NewService(logger, referrals, records, walletCards, cards, emitter, txManager)
	engagementService := engagement.NewService(logger, stats)
	walletService := wallet.NewService(logger, walletCards, cards)
	profileService := profile.NewService(logger, records, referrals, walletCards, engagementService)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval, cfg.RateLimit.TrustedProxies)

	router := NewRouter(Handlers{
		Health:     rest.NewHealthHandler(pool, healthCache, BuildVersion()),
		Cards:      rest.NewCardHandler(cardService, logger),
		Records:    rest.NewRecordHandler(recordService, logger),
		Referrals:  rest.NewReferralHandler(referralService, logger),
		Engagement: rest.NewEngagementHandler(engagementService, logger),
		Wallet:     rest.NewWalletHandler(walletService, logger),
		Profile:    rest.NewProfileHandler(profileService, logger),
		Audit:      rest.NewAuditHandler(emitter, logger),
	}, RouterDeps{
		Logger:       logger,
		CORS:         cfg.CORS,
		Verifier:     verifier,
		Authorizer:   newAuthorizer(cfg.Auth),
		StatsCounter: engagementService,
		Limiter:      limiter,
		WritesPerMin: cfg.RateLimit.WritesPerMinute,
	})

	return &stack{handler: router, cards: cardService, emitter: emitter, limiter: limiter}
}

// close drains the audit queue and stops the limiter.
func (s *stack) close() {
	s.emitter.Close()
	s.limiter.Stop()
}

// newCatalogClient passes a nil cache interface when c is nil.
func newCatalogClient(cfg config.CatalogConfig, c *cache.Client, logger *slog.Logger) *catalog.Client {
	if c == nil {
		return catalog.NewClient(cfg.URL, cfg.Timeout, cfg.CacheTTL, nil, logger)
	}
	return catalog.NewClient(cfg.URL, cfg.Timeout, cfg.CacheTTL, c, logger)
}

// newAuthorizer grants admin rights by custom claim first, then by the
// configured allowlist of subject ids.
func newAuthorizer(cfg config.AuthConfig) *auth.Authorizer {
	var strategies []auth.Strategy
	if cfg.AdminClaim != "" {
		strategies = append(strategies, auth.ClaimStrategy{Claim: cfg.AdminClaim})
	}
	if len(cfg.AdminUIDs) > 0 {
		strategies = append(strategies, auth.NewAllowlistStrategy(cfg.AdminUIDs))
	}
	return auth.NewAuthorizer(strategies...)
}
