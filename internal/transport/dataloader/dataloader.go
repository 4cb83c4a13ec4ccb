// Package dataloader provides per-request loaders that batch the referral
// engagement lookups of one response into a single aggregate query.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/creditodds/creditodds-api/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type statsCounter interface {
	Counts(ctx context.Context, ids []int64) (map[int64]domain.ReferralStats, error)
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	ReferralStats *dataloader.Loader[int64, domain.ReferralStats]
}

// NewLoaders creates a fresh set of loaders. Results are cached for the
// lifetime of the returned value, so create one per request.
func NewLoaders(counter statsCounter) *Loaders {
	return &Loaders{
		ReferralStats: dataloader.NewBatchedLoader(
			newReferralStatsBatchFn(counter),
			dataloader.WithWait[int64, domain.ReferralStats](wait),
			dataloader.WithBatchCapacity[int64, domain.ReferralStats](maxBatch),
		),
	}
}

func newReferralStatsBatchFn(counter statsCounter) dataloader.BatchFunc[int64, domain.ReferralStats] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[domain.ReferralStats] {
		counts, err := counter.Counts(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[domain.ReferralStats], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[domain.ReferralStats]{Error: err}
			}
			return results
		}

		results := make([]*dataloader.Result[domain.ReferralStats], len(keys))
		for i, id := range keys {
			st, ok := counts[id]
			if !ok {
				st = domain.ReferralStats{ReferralID: id}
			}
			results[i] = &dataloader.Result[domain.ReferralStats]{Data: st}
		}
		return results
	}
}

// LoadReferralStats resolves the stats of ids in order through the loader.
func (l *Loaders) LoadReferralStats(ctx context.Context, ids []int64) ([]domain.ReferralStats, error) {
	if len(ids) == 0 {
		return []domain.ReferralStats{}, nil
	}
	values, errs := l.ReferralStats.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context. It panics when the
// middleware was not installed.
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware installed?")
	}
	return l
}

// Middleware installs a fresh set of loaders on every request.
func Middleware(counter statsCounter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(counter))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
