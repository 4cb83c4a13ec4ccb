// Package catalog fetches the static card catalog document.
package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/creditodds/creditodds-api/internal/domain"
)

// CacheKey is the cache entry holding the raw catalog document.
const CacheKey = "catalog:cards"

const maxDocumentSize = 16 << 20

type byteCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// Client reads the catalog over HTTP, keeping the raw document in a cache.
type Client struct {
	url        string
	httpClient *http.Client
	cache      byteCache
	ttl        time.Duration
	retryDelay time.Duration
	now        func() time.Time
	log        *slog.Logger
}

// NewClient creates a catalog client. cache may be nil.
func NewClient(docURL string, timeout, ttl time.Duration, cache byteCache, logger *slog.Logger) *Client {
	return &Client{
		url:        docURL,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
		ttl:        ttl,
		retryDelay: 500 * time.Millisecond,
		now:        time.Now,
		log:        logger.With("adapter", "catalog"),
	}
}

// Cards returns the catalog, served from cache when possible.
// Upstream failures wrap domain.ErrUnavailable.
func (c *Client) Cards(ctx context.Context) ([]domain.CatalogCard, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, CacheKey); ok {
			cards, err := decodeDocument(body)
			if err == nil {
				return mapCards(cards), nil
			}
			c.log.WarnContext(ctx, "cached catalog unreadable", slog.String("error", err.Error()))
		}
	}
	return c.fetch(ctx, c.url)
}

// FetchFresh bypasses every cache layer, including intermediate HTTP caches,
// by appending a t=<unix nanos> query parameter. The local cache is refreshed.
func (c *Client) FetchFresh(ctx context.Context) ([]domain.CatalogCard, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse url: %w", err)
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(c.now().UnixNano(), 10))
	u.RawQuery = q.Encode()

	return c.fetch(ctx, u.String())
}

func (c *Client) fetch(ctx context.Context, reqURL string) ([]domain.CatalogCard, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "catalog request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("catalog: request failed: %v: %w", err, domain.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog: unexpected status %d: %w", resp.StatusCode, domain.ErrUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("catalog: read body: %v: %w", err, domain.ErrUnavailable)
	}

	raw, err := decodeDocument(body)
	if err != nil {
		return nil, fmt.Errorf("catalog: %v: %w", err, domain.ErrUnavailable)
	}

	if c.cache != nil {
		c.cache.Set(ctx, CacheKey, body, c.ttl)
	}

	cards := mapCards(raw)
	c.log.DebugContext(ctx, "catalog fetched", slog.Int("cards", len(cards)))
	return cards, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "catalog retry", slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	return c.httpClient.Do(req)
}
