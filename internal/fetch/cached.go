package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonathan/career-mentor/internal/db"
)

// CacheCollection is the store collection holding fetched page summaries.
const CacheCollection = "page_cache"

// DefaultCacheTTL is how long a successful fetch is reused.
const DefaultCacheTTL = 24 * time.Hour

// PageSummary is what the cache keeps for a successfully fetched page.
type PageSummary struct {
	URL         string    `json:"url"`
	StatusCode  int       `json:"statusCode"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// CachedResult is a page summary plus where it came from.
type CachedResult struct {
	PageSummary
	FromCache bool
}

// CachedFetcher wraps URL fetching with store-backed caching of page summaries.
type CachedFetcher struct {
	store     db.Store
	options   *Options
	cacheTTL  time.Duration
	skipCache bool
	now       func() time.Time
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
	// Now defaults to time.Now.
	Now func() time.Time
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL: DefaultCacheTTL,
		Options:  DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher. A nil store disables caching.
func NewCachedFetcher(store db.Store, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	f := &CachedFetcher{
		store:     store,
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
		now:       config.Now,
	}
	if f.options == nil {
		f.options = DefaultOptions()
	}
	if f.cacheTTL <= 0 {
		f.cacheTTL = DefaultCacheTTL
	}
	if f.now == nil {
		f.now = time.Now
	}
	return f
}

// Fetch returns the summary of a URL, from cache when a fresh entry exists.
// Failed fetches are never cached.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	key := cacheKey(urlStr)

	if f.cacheEnabled() {
		var cached PageSummary
		err := f.store.Get(ctx, CacheCollection, key, &cached)
		switch {
		case err == nil && f.now().Sub(cached.FetchedAt) < f.cacheTTL:
			return &CachedResult{PageSummary: cached, FromCache: true}, nil
		case err != nil && !errors.Is(err, db.ErrNotFound):
			return nil, fmt.Errorf("failed to check cache: %w", err)
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	meta, _ := ExtractMetadata(result.HTML)
	summary := PageSummary{
		URL:         urlStr,
		StatusCode:  result.StatusCode,
		Title:       meta.Title,
		Description: meta.Description,
		FetchedAt:   f.now().UTC(),
	}

	if f.cacheEnabled() {
		if err := f.store.Put(ctx, CacheCollection, key, summary); err != nil {
			slog.Warn("failed to cache page summary", slog.String("url", urlStr), slog.Any("error", err))
		}
	}

	return &CachedResult{PageSummary: summary}, nil
}

// InvalidateCache drops the cached entry for a URL.
func (f *CachedFetcher) InvalidateCache(ctx context.Context, urlStr string) error {
	if f.store == nil {
		return nil
	}
	err := f.store.Delete(ctx, CacheCollection, cacheKey(urlStr))
	if errors.Is(err, db.ErrNotFound) {
		return nil
	}
	return err
}

func (f *CachedFetcher) cacheEnabled() bool {
	return f.store != nil && !f.skipCache
}

func cacheKey(urlStr string) string {
	sum := sha256.Sum256([]byte(urlStr))
	return hex.EncodeToString(sum[:])
}
