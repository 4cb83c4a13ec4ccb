// Command sync-cards upserts every catalog card into the store by slug so
// records, referrals and wallet entries can reference it. It is intended to
// be invoked by an external cron job or after a catalog deploy.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/creditodds/creditodds-api/internal/adapter/catalog"
	"github.com/creditodds/creditodds-api/internal/adapter/postgres"
	cardrepo "github.com/creditodds/creditodds-api/internal/adapter/postgres/card"
	recordrepo "github.com/creditodds/creditodds-api/internal/adapter/postgres/record"
	"github.com/creditodds/creditodds-api/internal/app"
	"github.com/creditodds/creditodds-api/internal/config"
	"github.com/creditodds/creditodds-api/internal/service/card"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// Sync always reads the origin, so no cache is wired.
	svc := card.NewService(
		logger,
		catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.Timeout, cfg.Catalog.CacheTTL, nil, logger),
		cardrepo.New(pool),
		recordrepo.New(pool),
		postgres.NewTxManager(pool),
	)

	res, err := svc.Sync(ctx)
	if err != nil {
		logger.Error("card sync failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("card sync completed",
		slog.Int("inserted", res.Inserted),
		slog.Int("updated", res.Updated),
		slog.Int("skipped", res.Skipped),
	)
}
