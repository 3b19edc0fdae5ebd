// Package server exposes the aggregation pipeline over HTTP. Responses
// use the status/count/articles envelope the front-end consumes.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gideongeny/dailynews/internal/news"
)

// NewsService is the slice of the aggregator the handlers need.
type NewsService interface {
	GetNews(ctx context.Context, p news.Params) ([]news.Article, error)
	RequestCount() int64
	CacheSize() int
	ClearCache()
}

// Server holds the handler dependencies.
type Server struct {
	svc            NewsService
	defaultCountry string
	logger         *slog.Logger
}

// New creates a Server. An empty defaultCountry disables the implicit
// country filter on the homepage and trending endpoints.
func New(svc NewsService, defaultCountry string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		svc:            svc,
		defaultCountry: defaultCountry,
		logger:         logger,
	}
}

// Routes returns the configured http.Handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth())

	mux.HandleFunc("GET /api/news", s.handleNews())
	mux.HandleFunc("GET /api/news/category/{category}", s.handleCategory())
	mux.HandleFunc("GET /api/news/region/{region}", s.handleRegion())
	mux.HandleFunc("GET /api/search", s.handleSearch())
	mux.HandleFunc("GET /api/trending", s.handleTrending())

	mux.HandleFunc("POST /api/subscribe", s.handleSubscribe())
	mux.HandleFunc("POST /api/cache/clear", s.handleCacheClear())

	mux.HandleFunc("/", s.handleNotFound())

	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"status":  "error",
		"message": message,
	})
}
