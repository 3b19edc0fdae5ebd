package sources

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/gideongeny/dailynews/internal/news"
)

// Feed pairs an outlet name with its RSS/Atom URL.
type Feed struct {
	Name string
	URL  string
}

// feedsByCategory selects which feeds serve a category. Lookup data,
// not control flow; unknown categories use the default set.
var feedsByCategory = map[string][]Feed{
	"general": {
		{Name: "BBC News", URL: "http://feeds.bbci.co.uk/news/world/rss.xml"},
		{Name: "CNN", URL: "http://rss.cnn.com/rss/edition_world.rss"},
		{Name: "The Guardian", URL: "https://www.theguardian.com/world/rss"},
		{Name: "Al Jazeera", URL: "https://www.aljazeera.com/xml/rss/all.xml"},
		{Name: "Reuters", URL: "https://feeds.reuters.com/reuters/topNews"},
	},
	"world": {
		{Name: "BBC News", URL: "http://feeds.bbci.co.uk/news/world/rss.xml"},
		{Name: "CNN", URL: "http://rss.cnn.com/rss/edition_world.rss"},
		{Name: "The Guardian", URL: "https://www.theguardian.com/world/rss"},
		{Name: "Al Jazeera", URL: "https://www.aljazeera.com/xml/rss/all.xml"},
	},
	"business": {
		{Name: "BBC Business", URL: "http://feeds.bbci.co.uk/news/business/rss.xml"},
		{Name: "The Guardian", URL: "https://www.theguardian.com/uk/business/rss"},
	},
	"technology": {
		{Name: "BBC Technology", URL: "http://feeds.bbci.co.uk/news/technology/rss.xml"},
		{Name: "The Guardian", URL: "https://www.theguardian.com/uk/technology/rss"},
	},
	"sports": {
		{Name: "BBC Sport", URL: "http://feeds.bbci.co.uk/sport/rss.xml"},
		{Name: "The Guardian", URL: "https://www.theguardian.com/uk/sport/rss"},
	},
	"health": {
		{Name: "BBC Health", URL: "http://feeds.bbci.co.uk/news/health/rss.xml"},
	},
	"entertainment": {
		{Name: "BBC Entertainment", URL: "http://feeds.bbci.co.uk/news/entertainment_and_arts/rss.xml"},
	},
}

const (
	maxItemsPerFeed = 10
	maxDescription  = 300
)

// RSS aggregates a small set of wire-service feeds. No API keys, so it
// keeps working when every keyed provider is out of quota.
type RSS struct {
	parser  *gofeed.Parser
	timeout time.Duration
	feeds   func(category string) []Feed
}

func NewRSS(timeout time.Duration) *RSS {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &RSS{
		parser:  gofeed.NewParser(),
		timeout: timeout,
		feeds:   FeedsFor,
	}
}

func (s *RSS) Name() string { return "rss" }

// FeedsFor returns the feed list for a category.
func FeedsFor(category string) []Feed {
	if feeds, ok := feedsByCategory[category]; ok {
		return feeds
	}
	return feedsByCategory["general"]
}

// Fetch parses every feed for the category concurrently and flattens
// the items in feed-list order. Individual feed failures are tolerated
// as long as at least one feed yields articles.
func (s *RSS) Fetch(ctx context.Context, p news.Params) ([]news.Article, error) {
	category := p.Category
	if category == "" {
		category = news.DefaultCategory
	}
	feeds := s.feeds(category)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	results := make([][]news.Article, len(feeds))
	errs := make([]error, len(feeds))
	var wg sync.WaitGroup

	for i, f := range feeds {
		wg.Add(1)
		go func(i int, f Feed) {
			defer wg.Done()
			articles, err := s.fetchFeed(ctx, f, category)
			results[i], errs[i] = articles, err
		}(i, f)
	}
	wg.Wait()

	var articles []news.Article
	var lastErr error
	for i := range feeds {
		if errs[i] != nil {
			lastErr = errs[i]
			slog.Debug("feed failed", "source", s.Name(), "feed", feeds[i].Name, "error", errs[i])
			continue
		}
		articles = append(articles, results[i]...)
	}

	if len(articles) == 0 {
		if lastErr != nil {
			return nil, srcErr(s.Name(), lastErr)
		}
		return nil, srcErr(s.Name(), errors.New("no results"))
	}
	return articles, nil
}

func (s *RSS) fetchFeed(ctx context.Context, f Feed, category string) ([]news.Article, error) {
	feed, err := s.parser.ParseURLWithContext(f.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.Name, err)
	}

	items := feed.Items
	if len(items) > maxItemsPerFeed {
		items = items[:maxItemsPerFeed]
	}

	articles := make([]news.Article, 0, len(items))
	for _, item := range items {
		desc := news.Truncate(news.StripHTML(item.Description), maxDescription)
		content := news.Truncate(news.StripHTML(item.Content), maxDescription)

		a := news.Article{
			ID:          item.GUID,
			Title:       news.StripHTML(item.Title),
			Description: desc,
			Content:     content,
			URL:         item.Link,
			PublishedAt: rssPublished(item),
			Source:      f.Name,
			Category:    rssCategory(item, category),
			Country:     "global",
		}
		if item.Author != nil {
			a.Author = item.Author.Name
		}
		if item.Image != nil {
			a.Image = item.Image.URL
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func rssPublished(item *gofeed.Item) string {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC().Format(time.RFC3339)
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC().Format(time.RFC3339)
	}
	return ""
}

// rssCategory keeps the requested category when it is meaningful,
// otherwise infers one from the item text.
func rssCategory(item *gofeed.Item, requested string) string {
	if requested != "" && requested != news.DefaultCategory {
		return requested
	}
	return news.InferCategory(item.Title, item.Description)
}
