package cache

import (
	"testing"
	"time"

	"github.com/gideongeny/dailynews/internal/news"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		typ  string
		p    news.Params
		want string
	}{
		{"empty params", "news", news.Params{}, "news|category=|country=|q="},
		{"category only", "news", news.Params{Category: "sports"}, "news|category=sports|country=|q="},
		{"full params", "news", news.Params{Category: "business", Country: "ke", Query: "economy"}, "news|category=business|country=ke|q=economy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.typ, tt.p); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyDistinguishesParams(t *testing.T) {
	a := Key("news", news.Params{Category: "sports"})
	b := Key("news", news.Params{Query: "sports"})
	if a == b {
		t.Error("category and query filters must produce different keys")
	}
}

func TestMemorySetGet(t *testing.T) {
	m := NewMemory(15 * time.Minute)
	articles := []news.Article{{ID: "1", Title: "Kenya launches new 5G network", URL: "https://example.com/5g"}}

	m.Set("k", articles)
	got, ok := m.Get("k")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("Get returned %+v", got)
	}
}

func TestMemoryMiss(t *testing.T) {
	m := NewMemory(15 * time.Minute)
	if _, ok := m.Get("absent"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory(15 * time.Minute)
	now := time.Now()
	m.now = func() time.Time { return now }

	m.Set("k", []news.Article{{ID: "1"}})

	now = now.Add(14 * time.Minute)
	if _, ok := m.Get("k"); !ok {
		t.Error("entry expired before its TTL")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := m.Get("k"); ok {
		t.Error("entry survived past its TTL")
	}
	if m.Size() != 0 {
		t.Errorf("expired entry should be evicted, size = %d", m.Size())
	}
}

func TestMemorySetOverwrites(t *testing.T) {
	m := NewMemory(15 * time.Minute)
	m.Set("k", []news.Article{{ID: "old"}})
	m.Set("k", []news.Article{{ID: "new"}})

	got, ok := m.Get("k")
	if !ok || len(got) != 1 || got[0].ID != "new" {
		t.Errorf("Get after overwrite = %+v, ok=%v", got, ok)
	}
	if m.Size() != 1 {
		t.Errorf("Size = %d, want 1", m.Size())
	}
}

func TestMemoryClear(t *testing.T) {
	m := NewMemory(15 * time.Minute)
	m.Set("a", []news.Article{{ID: "1"}})
	m.Set("b", []news.Article{{ID: "2"}})

	m.Clear()
	if m.Size() != 0 {
		t.Errorf("Size after Clear = %d, want 0", m.Size())
	}
	if _, ok := m.Get("a"); ok {
		t.Error("entry survived Clear")
	}
}
