package sources

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gideongeny/dailynews/internal/news"
)

const (
	nytTopStoriesBaseURL = "https://api.nytimes.com/svc/topstories/v2"
	nytSearchURL         = "https://api.nytimes.com/svc/search/v2/articlesearch.json"
	nytStaticHost        = "https://static01.nyt.com/"
)

// NYTimes fetches from the New York Times. Free-text queries go through
// the Article Search API; everything else uses the Top Stories API for
// the section closest to the requested category.
type NYTimes struct {
	key       string
	client    *http.Client
	topURL    string
	searchURL string
}

func NewNYTimes(key string, timeout time.Duration) *NYTimes {
	return &NYTimes{
		key:       key,
		client:    newClient(timeout),
		topURL:    nytTopStoriesBaseURL,
		searchURL: nytSearchURL,
	}
}

func (s *NYTimes) Name() string { return "nytimes" }

// nytSection maps our category to a Top Stories section. Only a few
// sections line up; the rest fall back to the home feed.
func nytSection(category string) string {
	switch category {
	case "politics", "business", "sports", "health", "world", "technology":
		return category
	default:
		return "home"
	}
}

type nytMultimedia struct {
	URL string `json:"url"`
}

type nytResponse struct {
	// Top Stories shape.
	Results []struct {
		Title         string          `json:"title"`
		Abstract      string          `json:"abstract"`
		URL           string          `json:"url"`
		PublishedDate string          `json:"published_date"`
		Section       string          `json:"section"`
		Byline        string          `json:"byline"`
		Multimedia    []nytMultimedia `json:"multimedia"`
	} `json:"results"`

	// Article Search shape.
	Response struct {
		Docs []struct {
			ID       string `json:"_id"`
			Headline struct {
				Main string `json:"main"`
			} `json:"headline"`
			Abstract      string          `json:"abstract"`
			Snippet       string          `json:"snippet"`
			LeadParagraph string          `json:"lead_paragraph"`
			WebURL        string          `json:"web_url"`
			PubDate       string          `json:"pub_date"`
			SectionName   string          `json:"section_name"`
			Multimedia    []nytMultimedia `json:"multimedia"`
			Byline        struct {
				Original string `json:"original"`
			} `json:"byline"`
		} `json:"docs"`
	} `json:"response"`
}

func (s *NYTimes) Fetch(ctx context.Context, p news.Params) ([]news.Article, error) {
	if s.key == "" {
		return nil, srcErr(s.Name(), errors.New("no API key configured"))
	}

	var u *url.URL
	if p.Query != "" {
		u, _ = url.Parse(s.searchURL)
		q := u.Query()
		q.Set("q", p.Query)
		q.Set("api-key", s.key)
		u.RawQuery = q.Encode()
	} else {
		u, _ = url.Parse(fmt.Sprintf("%s/%s.json", s.topURL, nytSection(p.Category)))
		q := u.Query()
		q.Set("api-key", s.key)
		u.RawQuery = q.Encode()
	}

	slog.Debug("fetching", "source", s.Name(), "url", redact(u.String(), s.key))

	var resp nytResponse
	if err := getJSON(ctx, s.client, u.String(), &resp); err != nil {
		return nil, srcErr(s.Name(), err)
	}

	var articles []news.Article
	for _, r := range resp.Results {
		articles = append(articles, news.Article{
			Title:       r.Title,
			Description: r.Abstract,
			Content:     r.Abstract,
			URL:         r.URL,
			Image:       nytImage(r.Multimedia),
			PublishedAt: r.PublishedDate,
			Source:      "New York Times",
			Category:    orDefault(r.Section, p.Category),
			Author:      strings.TrimSpace(r.Byline),
			Country:     "us",
		})
	}
	for _, d := range resp.Response.Docs {
		articles = append(articles, news.Article{
			ID:          d.ID,
			Title:       d.Headline.Main,
			Description: orDefault(d.Abstract, d.Snippet),
			Content:     d.LeadParagraph,
			URL:         d.WebURL,
			Image:       nytImage(d.Multimedia),
			PublishedAt: d.PubDate,
			Source:      "New York Times",
			Category:    orDefault(d.SectionName, p.Category),
			Author:      d.Byline.Original,
			Country:     "us",
		})
	}

	if len(articles) == 0 {
		return nil, srcErr(s.Name(), errors.New("no results"))
	}
	return articles, nil
}

// nytImage picks the first multimedia entry, fixing up the relative
// paths the Search API sometimes returns.
func nytImage(media []nytMultimedia) string {
	for _, m := range media {
		if m.URL == "" {
			continue
		}
		if strings.HasPrefix(m.URL, "http") {
			return m.URL
		}
		return nytStaticHost + m.URL
	}
	return ""
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
