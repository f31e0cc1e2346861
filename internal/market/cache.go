package market

import (
	"context"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/collection"

	"github.com/guttosm/maxminpulse/internal/domain/models"
)

// CachedFetcher memoizes another Fetcher by (provider, ticker, start, end).
//
// Concurrent misses for the same key share a single upstream call. Failed
// fetches are not stored, so the next call retries.
type CachedFetcher struct {
	next  Fetcher
	cache *collection.Cache
}

// NewCachedFetcher wraps next with a bounded cache holding at most limit
// entries, each living for ttl.
func NewCachedFetcher(next Fetcher, limit int, ttl time.Duration) (*CachedFetcher, error) {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	opts := []collection.CacheOption{collection.WithName("fetch-" + next.Name())}
	if limit > 0 {
		opts = append(opts, collection.WithLimit(limit))
	}
	c, err := collection.NewCache(ttl, opts...)
	if err != nil {
		return nil, fmt.Errorf("create fetch cache: %w", err)
	}
	return &CachedFetcher{next: next, cache: c}, nil
}

func (c *CachedFetcher) Name() string { return c.next.Name() }

// Fetch implements Fetcher. The returned slice is a private copy.
func (c *CachedFetcher) Fetch(ctx context.Context, ticker string, start, end time.Time) ([]models.PriceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := c.cache.Take(cacheKey(c.next.Name(), ticker, start, end), func() (any, error) {
		return c.next.Fetch(ctx, ticker, start, end)
	})
	if err != nil {
		return nil, err
	}
	recs, _ := v.([]models.PriceRecord)
	out := make([]models.PriceRecord, len(recs))
	copy(out, recs)
	return out, nil
}

func cacheKey(provider, ticker string, start, end time.Time) string {
	return fmt.Sprintf("%s|%s|%s|%s", provider, ticker, start.Format(time.DateOnly), end.Format(time.DateOnly))
}
