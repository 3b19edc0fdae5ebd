package cache

import (
	"sync"
	"time"

	"github.com/gideongeny/dailynews/internal/news"
)

type entry struct {
	articles  []news.Article
	expiresAt time.Time
}

// Memory is an in-process TTL cache. Entries do not survive restarts;
// the TTL is short and the data is re-fetchable, so that is acceptable.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory creates a memory cache with the given TTL.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *Memory) Get(key string) ([]news.Article, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if m.now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}
	return e.articles, true
}

func (m *Memory) Set(key string, articles []news.Article) {
	m.mu.Lock()
	m.entries[key] = entry{articles: articles, expiresAt: m.now().Add(m.ttl)}
	m.mu.Unlock()
}

func (m *Memory) Clear() {
	m.mu.Lock()
	m.entries = make(map[string]entry)
	m.mu.Unlock()
}

func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
