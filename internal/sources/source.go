// Package sources contains one adapter per upstream news provider. An
// adapter translates generic query parameters into a provider request
// and maps the provider's response shape onto the canonical article
// schema. Adapter failures are wrapped in SourceError and are always
// recoverable: one broken provider never aborts a batch.
package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gideongeny/dailynews/internal/news"
)

// Source is the interface every provider adapter implements.
type Source interface {
	// Name returns the provider identity used in logs and errors.
	Name() string

	// Fetch retrieves and normalizes articles for the given parameters.
	Fetch(ctx context.Context, p news.Params) ([]news.Article, error)
}

// SourceError wraps an adapter failure with the provider's identity.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func srcErr(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}

const userAgent = "dailynews/1.0"

// newClient builds the HTTP client adapters share. The timeout bounds a
// single outbound call; a slow provider times out without touching its
// siblings.
func newClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// getJSON issues one GET and decodes the JSON body into v.
func getJSON(ctx context.Context, client *http.Client, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// redact masks an embedded API key so request URLs are safe to log.
func redact(url, key string) string {
	if key == "" {
		return url
	}
	return strings.ReplaceAll(url, key, "API_KEY")
}
