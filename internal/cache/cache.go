// Package cache provides time-boxed storage for aggregated result sets,
// keyed by request type and normalized parameters. The default backend
// is process memory; a Redis backend is available for deployments that
// want the cache to outlive restarts.
package cache

import (
	"fmt"

	"github.com/gideongeny/dailynews/internal/news"
)

// Cache stores ordered article sequences under string keys with a fixed
// TTL from insertion.
type Cache interface {
	// Get returns the cached sequence, or ok=false on a miss. An entry
	// past its expiry counts as a miss and is evicted.
	Get(key string) ([]news.Article, bool)
	// Set overwrites any existing entry and restarts its TTL.
	Set(key string, articles []news.Article)
	// Clear drops every entry.
	Clear()
	// Size returns the number of live entries.
	Size() int
}

// Key builds a cache key from a request type and its parameters. The
// field order is fixed so identical requests always map to one key.
func Key(requestType string, p news.Params) string {
	return fmt.Sprintf("%s|category=%s|country=%s|q=%s", requestType, p.Category, p.Country, p.Query)
}
