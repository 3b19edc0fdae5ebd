// Package dedup collapses near-duplicate articles. Multiple providers
// routinely carry the same story under slightly different headlines;
// title similarity above a fixed threshold treats them as one.
package dedup

import (
	"strings"

	"github.com/gideongeny/dailynews/internal/news"
)

// Threshold is the word-overlap similarity above which two titles are
// considered the same story.
const Threshold = 0.7

// Similarity computes token-set (word-overlap) similarity between two
// strings: |intersection| / |union| of their lowercased word sets.
// Identical strings score 1.0, disjoint ones 0.0.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	s1 := strings.ToLower(a)
	s2 := strings.ToLower(b)
	if s1 == s2 {
		return 1
	}

	words1 := wordSet(s1)
	words2 := wordSet(s2)

	intersection := 0
	for w := range words1 {
		if _, ok := words2[w]; ok {
			intersection++
		}
	}
	union := len(words1) + len(words2) - intersection
	if union == 0 {
		return 1
	}
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}

// Dedupe returns the articles with near-duplicates removed. Order is
// preserved and the first occurrence of a story wins. O(n²) in the batch
// size, which stays in the tens-to-low-hundreds per request; revisit the
// pairwise scan before pointing this at larger batches.
func Dedupe(articles []news.Article) []news.Article {
	unique := make([]news.Article, 0, len(articles))
	var accepted []string

	for _, a := range articles {
		duplicate := false
		for _, title := range accepted {
			if Similarity(a.Title, title) > Threshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		unique = append(unique, a)
		accepted = append(accepted, a.Title)
	}

	return dedupeExact(unique)
}

// dedupeExact is a cheap second pass removing exact title matches
// (case-insensitive, trimmed). The similarity pass already catches
// these; this is a safety net and is idempotent.
func dedupeExact(articles []news.Article) []news.Article {
	seen := make(map[string]struct{}, len(articles))
	out := articles[:0]
	for _, a := range articles {
		key := strings.ToLower(strings.TrimSpace(a.Title))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	return out
}
