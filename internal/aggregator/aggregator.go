// Package aggregator implements the news pipeline: cache lookup,
// concurrent fan-out to every source adapter, validation, dedup,
// recency sort, and the mock-data fallback that guarantees a non-empty
// result.
package aggregator

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gideongeny/dailynews/internal/cache"
	"github.com/gideongeny/dailynews/internal/dedup"
	"github.com/gideongeny/dailynews/internal/mock"
	"github.com/gideongeny/dailynews/internal/news"
	"github.com/gideongeny/dailynews/internal/sources"
)

// ErrAggregation is returned only when every source failed and the mock
// fallback is disabled. With the default configuration it is unreachable.
var ErrAggregation = errors.New("all news sources failed")

// Archiver persists aggregated articles. Satisfied by *store.Store;
// archiving is best-effort and never fails a request.
type Archiver interface {
	UpsertArticles(articles []news.Article) error
}

// Options configures an Aggregator.
type Options struct {
	// Cache holds aggregated result sets. Required.
	Cache cache.Cache
	// Sources are invoked in slice order on every cache miss. Required.
	Sources []sources.Source
	// Budget is the wall-clock limit for one fan-out. One hung provider
	// must not stall the response past this. Zero means 45s.
	Budget time.Duration
	// Fallback enables the mock dataset when live sources yield nothing.
	Fallback bool
	// Archive, when set, receives every live aggregated batch.
	Archive Archiver
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Aggregator fans requests out to the configured source adapters and
// merges their results. Safe for concurrent use.
type Aggregator struct {
	cache    cache.Cache
	sources  []sources.Source
	budget   time.Duration
	fallback bool
	archive  Archiver
	logger   *slog.Logger

	requests atomic.Int64
}

// New creates an Aggregator from Options.
func New(opts Options) *Aggregator {
	if opts.Budget <= 0 {
		opts.Budget = 45 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Aggregator{
		cache:    opts.Cache,
		sources:  opts.Sources,
		budget:   opts.Budget,
		fallback: opts.Fallback,
		archive:  opts.Archive,
		logger:   opts.Logger,
	}
}

// GetNews returns the aggregated, deduplicated, recency-sorted articles
// for the given parameters, serving from cache when possible. Partial
// source failures are logged and absorbed; the error return is non-nil
// only when the fallback is disabled and nothing could be produced.
//
// Concurrent misses on the same key each fan out independently. That
// only costs redundant upstream calls, never correctness, so there is
// no single-flight guard.
func (g *Aggregator) GetNews(ctx context.Context, p news.Params) ([]news.Article, error) {
	key := cache.Key("news", p)
	if articles, ok := g.cache.Get(key); ok {
		g.logger.Debug("cache hit", "key", key)
		return articles, nil
	}

	articles := g.fanOut(ctx, p)
	articles = validate(articles)
	articles = dedup.Dedupe(articles)
	sortByRecency(articles)

	if len(articles) > 0 {
		g.cache.Set(key, articles)
		g.requests.Add(1)
		if g.archive != nil {
			go g.archiveBatch(articles)
		}
		return articles, nil
	}

	if g.fallback {
		g.logger.Warn("all sources failed or empty, serving mock data", "category", p.Category)
		mocked := mock.Articles(p.Category, 20)
		g.cache.Set(key, mocked)
		return mocked, nil
	}

	return nil, ErrAggregation
}

// fanOut invokes every adapter concurrently and concatenates the
// successful results in adapter order. It waits for all calls to settle;
// there is no first-wins shortcut, every source contributes.
func (g *Aggregator) fanOut(ctx context.Context, p news.Params) []news.Article {
	ctx, cancel := context.WithTimeout(ctx, g.budget)
	defer cancel()

	results := make([][]news.Article, len(g.sources))
	errs := make([]error, len(g.sources))
	var wg sync.WaitGroup

	for i, src := range g.sources {
		wg.Add(1)
		go func(i int, src sources.Source) {
			defer wg.Done()
			results[i], errs[i] = src.Fetch(ctx, p)
		}(i, src)
	}
	wg.Wait()

	var articles []news.Article
	for i, src := range g.sources {
		if errs[i] != nil {
			g.logger.Warn("source failed", "source", src.Name(), "error", errs[i])
			continue
		}
		g.logger.Debug("source succeeded", "source", src.Name(), "articles", len(results[i]))
		articles = append(articles, results[i]...)
	}
	return articles
}

// validate drops records that fail the article invariants and fills the
// fallback fields on the survivors.
func validate(articles []news.Article) []news.Article {
	out := articles[:0]
	for _, a := range articles {
		if !news.Valid(a) {
			continue
		}
		out = append(out, news.Normalize(a))
	}
	return out
}

// sortByRecency orders by publishedAt descending. The sort is stable so
// equal timestamps keep their adapter-order position.
func sortByRecency(articles []news.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return news.PublishedTime(articles[i]).After(news.PublishedTime(articles[j]))
	})
}

func (g *Aggregator) archiveBatch(articles []news.Article) {
	if err := g.archive.UpsertArticles(articles); err != nil {
		g.logger.Warn("archiving articles", "error", err)
	}
}

// RequestCount reports how many live (non-cached, non-fallback)
// aggregations have completed. Diagnostic only.
func (g *Aggregator) RequestCount() int64 {
	return g.requests.Load()
}

// CacheSize reports the number of live cache entries.
func (g *Aggregator) CacheSize() int {
	return g.cache.Size()
}

// ClearCache drops all cached result sets.
func (g *Aggregator) ClearCache() {
	g.cache.Clear()
}
