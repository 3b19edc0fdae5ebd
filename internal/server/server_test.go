package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gideongeny/dailynews/internal/news"
)

type fakeService struct {
	articles   []news.Article
	err        error
	lastParams news.Params
	cleared    bool
}

func (f *fakeService) GetNews(ctx context.Context, p news.Params) ([]news.Article, error) {
	f.lastParams = p
	return f.articles, f.err
}

func (f *fakeService) RequestCount() int64 { return 7 }
func (f *fakeService) CacheSize() int      { return 3 }
func (f *fakeService) ClearCache()         { f.cleared = true }

func testServer(svc NewsService) http.Handler {
	return New(svc, "ke", nil).Routes()
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return body
}

func sampleArticles() []news.Article {
	return []news.Article{
		{ID: "1", Title: "Parliament passes finance bill today", URL: "https://example.com/1"},
		{ID: "2", Title: "Safaricom switches on new 5G network", URL: "https://example.com/2"},
	}
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, testServer(&fakeService{}), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["requestCount"] != float64(7) {
		t.Errorf("requestCount = %v", body["requestCount"])
	}
	if body["cacheSize"] != float64(3) {
		t.Errorf("cacheSize = %v", body["cacheSize"])
	}
}

func TestNews(t *testing.T) {
	svc := &fakeService{articles: sampleArticles()}
	rec := doRequest(t, testServer(svc), http.MethodGet, "/api/news", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["status"] != "success" {
		t.Errorf("status = %v", body["status"])
	}
	if body["count"] != float64(2) {
		t.Errorf("count = %v", body["count"])
	}
	if svc.lastParams.Country != "ke" {
		t.Errorf("homepage should use the default country, got %q", svc.lastParams.Country)
	}
}

func TestNewsUpstreamError(t *testing.T) {
	svc := &fakeService{err: errors.New("everything is down")}
	rec := doRequest(t, testServer(svc), http.MethodGet, "/api/news", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if decode(t, rec)["status"] != "error" {
		t.Error("expected error envelope")
	}
}

func TestCategory(t *testing.T) {
	svc := &fakeService{articles: sampleArticles()}
	rec := doRequest(t, testServer(svc), http.MethodGet, "/api/news/category/Sports", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["category"] != "sports" {
		t.Errorf("category echo = %v, want lowercased", body["category"])
	}
	if svc.lastParams != news.Categories["sports"] {
		t.Errorf("params = %+v, want the sports table entry", svc.lastParams)
	}
}

func TestCategoryUnknown(t *testing.T) {
	rec := doRequest(t, testServer(&fakeService{}), http.MethodGet, "/api/news/category/astrology", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if decode(t, rec)["message"] != "Invalid category" {
		t.Errorf("message = %v", decode(t, rec)["message"])
	}
}

func TestRegion(t *testing.T) {
	svc := &fakeService{articles: sampleArticles()}
	rec := doRequest(t, testServer(svc), http.MethodGet, "/api/news/region/kenya", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if decode(t, rec)["region"] != "kenya" {
		t.Error("expected region echo")
	}
	if svc.lastParams.Country != "ke" {
		t.Errorf("region params = %+v", svc.lastParams)
	}
}

func TestRegionUnknown(t *testing.T) {
	rec := doRequest(t, testServer(&fakeService{}), http.MethodGet, "/api/news/region/atlantis", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSearch(t *testing.T) {
	svc := &fakeService{articles: sampleArticles()}
	rec := doRequest(t, testServer(svc), http.MethodGet, "/api/search?q=economy&category=Business", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if decode(t, rec)["query"] != "economy" {
		t.Error("expected query echo")
	}
	if svc.lastParams.Query != "economy" || svc.lastParams.Category != "business" {
		t.Errorf("params = %+v", svc.lastParams)
	}
}

func TestSearchMissingQuery(t *testing.T) {
	rec := doRequest(t, testServer(&fakeService{}), http.MethodGet, "/api/search", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTrendingCapsAtFive(t *testing.T) {
	many := make([]news.Article, 8)
	for i := range many {
		many[i] = news.Article{ID: string(rune('a' + i)), Title: "A sufficiently long headline here", URL: "https://example.com/x"}
	}
	rec := doRequest(t, testServer(&fakeService{articles: many}), http.MethodGet, "/api/trending", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	articles, ok := body["articles"].([]interface{})
	if !ok {
		t.Fatalf("articles field missing: %v", body)
	}
	if len(articles) != 5 {
		t.Errorf("trending returned %d articles, want 5", len(articles))
	}
}

func TestSubscribe(t *testing.T) {
	rec := doRequest(t, testServer(&fakeService{}), http.MethodPost, "/api/subscribe", `{"email":"reader@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["email"] != "reader@example.com" {
		t.Errorf("email echo = %v", body["email"])
	}
}

func TestSubscribeInvalidEmail(t *testing.T) {
	for _, payload := range []string{`{"email":"not-an-email"}`, `{}`, `not json`} {
		rec := doRequest(t, testServer(&fakeService{}), http.MethodPost, "/api/subscribe", payload)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("payload %q: status = %d, want 400", payload, rec.Code)
		}
	}
}

func TestCacheClear(t *testing.T) {
	svc := &fakeService{}
	rec := doRequest(t, testServer(svc), http.MethodPost, "/api/cache/clear", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !svc.cleared {
		t.Error("cache was not cleared")
	}
}

func TestNotFound(t *testing.T) {
	rec := doRequest(t, testServer(&fakeService{}), http.MethodGet, "/api/nonsense", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := decode(t, rec)
	if body["status"] != "error" || body["path"] != "/api/nonsense" {
		t.Errorf("body = %v", body)
	}
}
