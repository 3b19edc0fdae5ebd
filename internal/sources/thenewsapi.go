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

const theNewsAPIBaseURL = "https://api.thenewsapi.com/v1/news/all"

// TheNewsAPI fetches from thenewsapi.com's "all news" endpoint.
type TheNewsAPI struct {
	key     string
	client  *http.Client
	baseURL string
}

func NewTheNewsAPI(key string, timeout time.Duration) *TheNewsAPI {
	return &TheNewsAPI{
		key:     key,
		client:  newClient(timeout),
		baseURL: theNewsAPIBaseURL,
	}
}

func (s *TheNewsAPI) Name() string { return "thenewsapi" }

type theNewsAPIResponse struct {
	Data []struct {
		UUID        string `json:"uuid"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		ImageURL    string `json:"image_url"`
		PublishedAt string `json:"published_at"`
		Source      string `json:"source"`
	} `json:"data"`
}

func (s *TheNewsAPI) Fetch(ctx context.Context, p news.Params) ([]news.Article, error) {
	if s.key == "" {
		return nil, srcErr(s.Name(), errors.New("no API key configured"))
	}

	u, _ := url.Parse(s.baseURL)
	q := u.Query()
	q.Set("api_token", s.key)
	q.Set("language", "en")
	q.Set("limit", "20")
	if p.Category != "" {
		q.Set("categories", p.Category)
	}
	if p.Query != "" {
		q.Set("search", p.Query)
	}
	u.RawQuery = q.Encode()

	slog.Debug("fetching", "source", s.Name(), "url", redact(u.String(), s.key))

	var resp theNewsAPIResponse
	if err := getJSON(ctx, s.client, u.String(), &resp); err != nil {
		return nil, srcErr(s.Name(), err)
	}
	if len(resp.Data) == 0 {
		return nil, srcErr(s.Name(), errors.New("no results"))
	}

	articles := make([]news.Article, 0, len(resp.Data))
	for _, r := range resp.Data {
		articles = append(articles, news.Article{
			ID:          r.UUID,
			Title:       r.Title,
			Description: r.Description,
			Content:     r.Description,
			URL:         r.URL,
			Image:       r.ImageURL,
			PublishedAt: r.PublishedAt,
			Source:      r.Source,
			Category:    p.Category,
			Country:     p.Country,
		})
	}
	return articles, nil
}
