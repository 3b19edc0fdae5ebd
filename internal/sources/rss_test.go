package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gideongeny/dailynews/internal/news"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Feed</title>
    <item>
      <guid>rss-item-1</guid>
      <title>Safaricom switches on 5G in &lt;b&gt;Nairobi&lt;/b&gt;</title>
      <description>&lt;p&gt;The telco brings broadband speeds to the capital.&lt;/p&gt;</description>
      <link>https://example.com/5g</link>
      <pubDate>Sun, 30 Aug 2026 10:00:00 GMT</pubDate>
    </item>
    <item>
      <guid>rss-item-2</guid>
      <title>Parliament debates election law ahead of campaign</title>
      <description>Legislators spent the day on the proposed law.</description>
      <link>https://example.com/law</link>
      <pubDate>Sun, 30 Aug 2026 09:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func rssTestServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRSSFetch(t *testing.T) {
	srv := rssTestServer(t, rssFixture)

	s := NewRSS(time.Second)
	s.feeds = func(string) []Feed {
		return []Feed{{Name: "Example Feed", URL: srv.URL}}
	}

	articles, err := s.Fetch(context.Background(), news.Params{Category: "technology"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}

	a := articles[0]
	if a.ID != "rss-item-1" {
		t.Errorf("ID = %q", a.ID)
	}
	if a.Title != "Safaricom switches on 5G in Nairobi" {
		t.Errorf("markup not stripped from title: %q", a.Title)
	}
	if a.Description != "The telco brings broadband speeds to the capital." {
		t.Errorf("markup not stripped from description: %q", a.Description)
	}
	if a.Source != "Example Feed" {
		t.Errorf("Source = %q", a.Source)
	}
	if a.Category != "technology" {
		t.Errorf("requested category should stick, got %q", a.Category)
	}
	if news.PublishedTime(a).IsZero() {
		t.Errorf("publishedAt %q should be parseable", a.PublishedAt)
	}
}

func TestRSSFetchInfersCategoryForGeneral(t *testing.T) {
	srv := rssTestServer(t, rssFixture)

	s := NewRSS(time.Second)
	s.feeds = func(string) []Feed {
		return []Feed{{Name: "Example Feed", URL: srv.URL}}
	}

	articles, err := s.Fetch(context.Background(), news.Params{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if articles[0].Category != "technology" {
		t.Errorf("5G story inferred as %q, want technology", articles[0].Category)
	}
	if articles[1].Category != "politics" {
		t.Errorf("election story inferred as %q, want politics", articles[1].Category)
	}
}

func TestRSSFetchToleratesOneBrokenFeed(t *testing.T) {
	good := rssTestServer(t, rssFixture)
	bad := rssTestServer(t, "not xml at all")

	s := NewRSS(time.Second)
	s.feeds = func(string) []Feed {
		return []Feed{
			{Name: "Broken", URL: bad.URL},
			{Name: "Example Feed", URL: good.URL},
		}
	}

	articles, err := s.Fetch(context.Background(), news.Params{})
	if err != nil {
		t.Fatalf("Fetch should tolerate one broken feed: %v", err)
	}
	if len(articles) != 2 {
		t.Errorf("got %d articles from the healthy feed", len(articles))
	}
}

func TestRSSFetchAllFeedsBroken(t *testing.T) {
	bad := rssTestServer(t, "not xml at all")

	s := NewRSS(time.Second)
	s.feeds = func(string) []Feed {
		return []Feed{{Name: "Broken", URL: bad.URL}}
	}

	if _, err := s.Fetch(context.Background(), news.Params{}); err == nil {
		t.Error("expected error when every feed fails")
	}
}

func TestFeedsFor(t *testing.T) {
	if len(FeedsFor("sports")) == 0 {
		t.Error("sports should have feeds")
	}
	unknown := FeedsFor("astrology")
	general := FeedsFor("general")
	if len(unknown) != len(general) {
		t.Error("unknown categories should use the general feed set")
	}
}
