// Package news defines the canonical article schema shared by every
// source adapter, plus the validation and normalization rules applied
// before an article is surfaced to a caller.
package news

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"
)

// Article is the provider-agnostic article shape. The JSON field names
// are part of the wire contract with the front-end and must not change.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	Country     string `json:"country,omitempty"`
}

// Params is the generic query descriptor every adapter translates into
// its provider-specific request.
type Params struct {
	Category string
	Country  string
	Query    string
}

const (
	// MinTitleLength is the shortest title an article may carry.
	MinTitleLength = 10

	minDescriptionLength = 20

	// DefaultAuthor is the byline used when the upstream provides none.
	DefaultAuthor = "Staff Writer"

	// DefaultCategory is the catch-all category.
	DefaultCategory = "general"

	defaultSource = "News Source"
)

// ID derives a stable article id from title and source. Upstream items
// without their own identifier get the same id on every fetch, so cached
// and bookmarked entries survive reloads.
func ID(title, source string) string {
	h := sha256.Sum256([]byte(title + "|" + source))
	return fmt.Sprintf("%x", h[:8])
}

// Valid reports whether the article meets the minimum bar to be surfaced:
// a qualifying title and an absolute HTTP(S) URL.
func Valid(a Article) bool {
	if len(strings.TrimSpace(a.Title)) < MinTitleLength {
		return false
	}
	if !strings.HasPrefix(a.URL, "http") {
		return false
	}
	return true
}

// Normalize fills the fallback values for every optional field and
// assigns a deterministic id when the upstream gave none. It assumes the
// article has already passed Valid.
func Normalize(a Article) Article {
	if a.Source == "" {
		a.Source = defaultSource
	}
	if a.ID == "" {
		a.ID = ID(a.Title, a.Source)
	}
	if len(strings.TrimSpace(a.Description)) < minDescriptionLength {
		a.Description = Excerpt(a.Title)
	}
	if a.Content == "" {
		a.Content = a.Description
	}
	if a.Category == "" {
		a.Category = DefaultCategory
	}
	if a.Image == "" || a.Image == "null" {
		a.Image = Placeholder(a.Category)
	}
	if a.PublishedAt == "" {
		a.PublishedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if a.Author == "" {
		a.Author = DefaultAuthor
	}
	return a
}

// Excerpt synthesizes a description from a title.
func Excerpt(title string) string {
	if title == "" {
		return "Read the full article for more details."
	}
	if len(title) >= 50 {
		return title + "..."
	}
	return title + ". Click to read the full story and stay informed on the latest developments."
}

// PublishedTime parses an article's publishedAt field, trying the
// formats the upstream providers actually emit. Zero time on failure.
func PublishedTime(a Article) time.Time {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.000000Z",
		time.RFC1123Z,
		time.RFC1123,
		"2006-01-02",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, a.PublishedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}

// StripHTML removes tags and collapses whitespace. Feed descriptions
// frequently embed markup.
func StripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Truncate shortens s to at most n runes, appending an ellipsis.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
