package sources

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gideongeny/dailynews/internal/news"
)

// Mediastack's free tier is HTTP-only.
const mediastackBaseURL = "http://api.mediastack.com/v1/news"

// Mediastack fetches from the mediastack live-news API. The provider
// has no stable per-article id, so ids are always derived from
// title+source.
type Mediastack struct {
	key     string
	client  *http.Client
	baseURL string
}

func NewMediastack(key string, timeout time.Duration) *Mediastack {
	return &Mediastack{
		key:     key,
		client:  newClient(timeout),
		baseURL: mediastackBaseURL,
	}
}

func (s *Mediastack) Name() string { return "mediastack" }

type mediastackResponse struct {
	Data []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Image       string `json:"image"`
		PublishedAt string `json:"published_at"`
		Source      string `json:"source"`
		Category    string `json:"category"`
		Author      string `json:"author"`
		Country     string `json:"country"`
	} `json:"data"`
}

func (s *Mediastack) Fetch(ctx context.Context, p news.Params) ([]news.Article, error) {
	if s.key == "" {
		return nil, srcErr(s.Name(), errors.New("no API key configured"))
	}

	u, _ := url.Parse(s.baseURL)
	q := u.Query()
	q.Set("access_key", s.key)
	q.Set("languages", "en")
	q.Set("limit", "25")
	if p.Category != "" {
		q.Set("categories", p.Category)
	}
	if p.Country != "" && p.Country != "global" {
		q.Set("countries", p.Country)
	}
	if p.Query != "" {
		q.Set("keywords", p.Query)
	}
	u.RawQuery = q.Encode()

	slog.Debug("fetching", "source", s.Name(), "url", redact(u.String(), s.key))

	var resp mediastackResponse
	if err := getJSON(ctx, s.client, u.String(), &resp); err != nil {
		return nil, srcErr(s.Name(), err)
	}
	if len(resp.Data) == 0 {
		return nil, srcErr(s.Name(), errors.New("no results"))
	}

	articles := make([]news.Article, 0, len(resp.Data))
	for _, r := range resp.Data {
		source := r.Source
		if source == "" {
			source = "Mediastack"
		}
		a := news.Article{
			ID:          news.ID(r.Title, source),
			Title:       r.Title,
			Description: r.Description,
			Content:     r.Description,
			URL:         r.URL,
			Image:       r.Image,
			PublishedAt: r.PublishedAt,
			Source:      source,
			Category:    r.Category,
			Author:      r.Author,
			Country:     r.Country,
		}
		if a.Category == "" {
			a.Category = p.Category
		}
		if a.Country == "" {
			a.Country = p.Country
		}
		articles = append(articles, a)
	}
	return articles, nil
}
