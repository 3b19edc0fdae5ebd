package sources

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/gideongeny/dailynews/internal/news"
)

const newsDataBaseURL = "https://newsdata.io/api/1/news"

// NewsData fetches from the NewsData.io latest-news API. It holds a list
// of API keys and rotates to the next one per call, spreading requests
// across each key's daily quota.
type NewsData struct {
	keys    []string
	keyIdx  atomic.Uint64
	client  *http.Client
	baseURL string
}

// NewNewsData creates the adapter. With no keys configured every Fetch
// fails softly with a SourceError.
func NewNewsData(keys []string, timeout time.Duration) *NewsData {
	return &NewsData{
		keys:    keys,
		client:  newClient(timeout),
		baseURL: newsDataBaseURL,
	}
}

func (s *NewsData) Name() string { return "newsdata" }

type newsDataResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Results []struct {
		ArticleID   string   `json:"article_id"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Content     string   `json:"content"`
		Link        string   `json:"link"`
		ImageURL    string   `json:"image_url"`
		PubDate     string   `json:"pubDate"`
		SourceID    string   `json:"source_id"`
		Category    []string `json:"category"`
		Creator     []string `json:"creator"`
		Country     []string `json:"country"`
	} `json:"results"`
}

func (s *NewsData) Fetch(ctx context.Context, p news.Params) ([]news.Article, error) {
	if len(s.keys) == 0 {
		return nil, srcErr(s.Name(), errors.New("no API key configured"))
	}
	key := s.keys[s.keyIdx.Add(1)%uint64(len(s.keys))]

	u, _ := url.Parse(s.baseURL)
	q := u.Query()
	q.Set("apikey", key)
	q.Set("language", "en")
	if p.Country != "" {
		q.Set("country", p.Country)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	u.RawQuery = q.Encode()

	slog.Debug("fetching", "source", s.Name(), "url", redact(u.String(), key))

	var resp newsDataResponse
	if err := getJSON(ctx, s.client, u.String(), &resp); err != nil {
		return nil, srcErr(s.Name(), err)
	}
	if resp.Status != "success" {
		if resp.Message != "" {
			return nil, srcErr(s.Name(), errors.New(resp.Message))
		}
		return nil, srcErr(s.Name(), errors.New("non-success status"))
	}
	if len(resp.Results) == 0 {
		return nil, srcErr(s.Name(), errors.New("no results"))
	}

	articles := make([]news.Article, 0, len(resp.Results))
	for _, r := range resp.Results {
		a := news.Article{
			ID:          r.ArticleID,
			Title:       r.Title,
			Description: r.Description,
			Content:     r.Content,
			URL:         r.Link,
			Image:       r.ImageURL,
			PublishedAt: r.PubDate,
			Source:      r.SourceID,
			Category:    p.Category,
			Country:     p.Country,
		}
		if len(r.Category) > 0 {
			a.Category = r.Category[0]
		}
		if len(r.Creator) > 0 {
			a.Author = r.Creator[0]
		}
		if len(r.Country) > 0 {
			a.Country = r.Country[0]
		}
		articles = append(articles, a)
	}
	return articles, nil
}
