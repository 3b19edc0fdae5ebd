package dedup

import (
	"testing"

	"github.com/gideongeny/dailynews/internal/news"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "Kenya launches 5G network", "Kenya launches 5G network", 1.0},
		{"identical after lowercasing", "KENYA Launches 5G", "kenya launches 5g", 1.0},
		{"disjoint", "Kenya launches 5G network", "Parliament debates budget today", 0.0},
		{"empty left", "", "anything", 0.0},
		{"empty right", "anything", "", 0.0},
		{"half overlap", "one two three four", "three four five six", 1.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); got != tt.want {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a := "Safaricom launches 5G in Nairobi"
	b := "Safaricom switches on 5G network in Nairobi"
	if Similarity(a, b) != Similarity(b, a) {
		t.Error("similarity should be symmetric")
	}
}

func TestDedupeFirstWins(t *testing.T) {
	articles := []news.Article{
		{ID: "1", Title: "Safaricom launches 5G network in Nairobi today", Source: "BBC News"},
		{ID: "2", Title: "Safaricom launches 5G network in Nairobi", Source: "CNN"},
		{ID: "3", Title: "Parliament passes finance bill after long debate", Source: "Reuters"},
	}

	got := Dedupe(articles)
	if len(got) != 2 {
		t.Fatalf("Dedupe returned %d articles, want 2", len(got))
	}
	if got[0].ID != "1" {
		t.Errorf("first occurrence should win, got id %q", got[0].ID)
	}
	if got[1].ID != "3" {
		t.Errorf("unrelated article should survive, got id %q", got[1].ID)
	}
}

func TestDedupeNearIdenticalHeadlines(t *testing.T) {
	a := "Kenya Launches New 5G Network"
	b := "Kenya Launches New 5G Network Today"
	if sim := Similarity(a, b); sim <= Threshold {
		t.Fatalf("Similarity = %v, want above %v", sim, Threshold)
	}
	got := Dedupe([]news.Article{{ID: "1", Title: a}, {ID: "2", Title: b}})
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("Dedupe = %+v, want just the first headline", got)
	}
}

func TestDedupePreservesOrder(t *testing.T) {
	articles := []news.Article{
		{ID: "a", Title: "Kenya wins gold at athletics championship"},
		{ID: "b", Title: "Central bank holds interest rates steady"},
		{ID: "c", Title: "New hospital opens in Kisumu county"},
	}
	got := Dedupe(articles)
	if len(got) != 3 {
		t.Fatalf("Dedupe returned %d articles, want 3", len(got))
	}
	for i, id := range []string{"a", "b", "c"} {
		if got[i].ID != id {
			t.Errorf("position %d = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestDedupeIdempotent(t *testing.T) {
	articles := []news.Article{
		{ID: "1", Title: "Safaricom launches 5G network in Nairobi today"},
		{ID: "2", Title: "Safaricom launches 5G network in Nairobi"},
		{ID: "3", Title: "Parliament passes finance bill after long debate"},
	}
	once := Dedupe(articles)
	twice := Dedupe(once)
	if len(once) != len(twice) {
		t.Errorf("Dedupe not idempotent: %d then %d", len(once), len(twice))
	}
}

func TestDedupeExactCaseInsensitive(t *testing.T) {
	articles := []news.Article{
		{ID: "1", Title: "KENYA WINS GOLD"},
		{ID: "2", Title: "  kenya wins gold  "},
	}
	got := Dedupe(articles)
	if len(got) != 1 {
		t.Errorf("Dedupe returned %d articles, want 1", len(got))
	}
}

func TestDedupeBelowThresholdKeepsBoth(t *testing.T) {
	// Shares two words out of many; similarity well under the threshold.
	articles := []news.Article{
		{ID: "1", Title: "Kenya economy grows faster than expected this quarter"},
		{ID: "2", Title: "Kenya football team qualifies for continental tournament"},
	}
	got := Dedupe(articles)
	if len(got) != 2 {
		t.Errorf("Dedupe returned %d articles, want 2 distinct stories", len(got))
	}
}

func TestDedupeEmpty(t *testing.T) {
	if got := Dedupe(nil); len(got) != 0 {
		t.Errorf("Dedupe(nil) = %v, want empty", got)
	}
}
