package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gideongeny/dailynews/internal/news"
)

const trendingCount = 5

// newsResponse is the article list envelope. The optional echo fields
// tell the caller which filter produced the list.
type newsResponse struct {
	Status   string         `json:"status"`
	Category string         `json:"category,omitempty"`
	Region   string         `json:"region,omitempty"`
	Query    string         `json:"query,omitempty"`
	Count    int            `json:"count"`
	Articles []news.Article `json:"articles"`
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"status":       "ok",
			"timestamp":    time.Now().UTC().Format(time.RFC3339),
			"service":      "Daily News API",
			"requestCount": s.svc.RequestCount(),
			"cacheSize":    s.svc.CacheSize(),
		})
	}
}

func (s *Server) handleNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := s.svc.GetNews(r.Context(), news.Params{Country: s.defaultCountry})
		if err != nil {
			s.logger.Error("fetching news", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch news")
			return
		}
		respondJSON(w, http.StatusOK, newsResponse{
			Status:   "success",
			Count:    len(articles),
			Articles: articles,
		})
	}
}

func (s *Server) handleCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := strings.ToLower(r.PathValue("category"))
		params, ok := news.Categories[category]
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid category")
			return
		}

		articles, err := s.svc.GetNews(r.Context(), params)
		if err != nil {
			s.logger.Error("fetching category news", "category", category, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch category news")
			return
		}
		respondJSON(w, http.StatusOK, newsResponse{
			Status:   "success",
			Category: category,
			Count:    len(articles),
			Articles: articles,
		})
	}
}

func (s *Server) handleRegion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region := strings.ToLower(r.PathValue("region"))
		params, ok := news.Regions[region]
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid region")
			return
		}

		articles, err := s.svc.GetNews(r.Context(), params)
		if err != nil {
			s.logger.Error("fetching region news", "region", region, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch region news")
			return
		}
		respondJSON(w, http.StatusOK, newsResponse{
			Status:   "success",
			Region:   region,
			Count:    len(articles),
			Articles: articles,
		})
	}
}

func (s *Server) handleSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			respondError(w, http.StatusBadRequest, "Search query required")
			return
		}

		params := news.Params{
			Query:    q,
			Category: strings.ToLower(r.URL.Query().Get("category")),
		}
		articles, err := s.svc.GetNews(r.Context(), params)
		if err != nil {
			s.logger.Error("searching news", "query", q, "error", err)
			respondError(w, http.StatusInternalServerError, "Search failed")
			return
		}
		respondJSON(w, http.StatusOK, newsResponse{
			Status:   "success",
			Query:    q,
			Count:    len(articles),
			Articles: articles,
		})
	}
}

// handleTrending returns the most recent articles for the default
// country. Results come back recency-sorted, so trending is a prefix.
func (s *Server) handleTrending() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := s.svc.GetNews(r.Context(), news.Params{Country: s.defaultCountry})
		if err != nil {
			s.logger.Error("fetching trending", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch trending")
			return
		}
		if len(articles) > trendingCount {
			articles = articles[:trendingCount]
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"status":   "success",
			"articles": articles,
		})
	}
}

func (s *Server) handleSubscribe() http.HandlerFunc {
	type request struct {
		Email string `json:"email"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !strings.Contains(req.Email, "@") {
			respondError(w, http.StatusBadRequest, "Valid email address is required")
			return
		}

		s.logger.Info("newsletter subscription", "email", req.Email)

		respondJSON(w, http.StatusOK, map[string]string{
			"status":  "success",
			"message": "Successfully subscribed to newsletter",
			"email":   req.Email,
		})
	}
}

func (s *Server) handleCacheClear() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.svc.ClearCache()
		respondJSON(w, http.StatusOK, map[string]string{
			"status":  "success",
			"message": "Cache cleared",
		})
	}
}

func (s *Server) handleNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, map[string]string{
			"status":  "error",
			"message": "Route not found",
			"path":    r.URL.Path,
		})
	}
}
