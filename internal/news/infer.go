package news

import (
	"strings"
	"unicode"
)

// AllCategories returns the canonical category enumeration in fixed order.
func AllCategories() []string {
	return []string{
		"politics", "business", "technology", "sports",
		"culture", "health", "world", "entertainment", DefaultCategory,
	}
}

// KnownCategory reports whether c is one of the canonical categories.
func KnownCategory(c string) bool {
	for _, k := range AllCategories() {
		if k == c {
			return true
		}
	}
	return false
}

var categoryKeywords = map[string][]string{
	"politics": {
		"politics", "government", "election", "parliament", "president",
		"senator", "minister", "policy", "vote", "campaign", "legislation",
	},
	"business": {
		"business", "economy", "market", "finance", "trade", "investment",
		"bank", "stocks", "revenue", "startup", "export", "inflation",
	},
	"technology": {
		"technology", "tech", "software", "startup", "digital", "internet",
		"smartphone", "computer", "cyber", "innovation", "5g", "broadband",
		"artificial intelligence",
	},
	"sports": {
		"sports", "football", "athletics", "match", "tournament", "champion",
		"league", "olympic", "stadium", "record", "sprint", "marathon",
	},
	"culture": {
		"culture", "heritage", "tradition", "arts", "festival", "museum",
		"community", "language", "history",
	},
	"health": {
		"health", "hospital", "medical", "disease", "vaccine", "doctor",
		"wellness", "clinic", "outbreak", "treatment",
	},
	"world": {
		"world", "international", "global", "united nations", "diplomacy",
		"border", "summit", "foreign",
	},
	"entertainment": {
		"entertainment", "music", "film", "movie", "celebrity", "concert",
		"award", "fashion", "television", "artist",
	},
}

// InferCategory guesses a canonical category from title and description.
// Title keywords count double. Returns the default category when nothing
// matches; ties resolve in canonical order.
func InferCategory(title, description string) string {
	titleTokens := tokenize(title)
	descTokens := tokenize(description)
	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(description)

	best := DefaultCategory
	bestScore := 0

	for _, cat := range AllCategories() {
		score := 0
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(kw, " ") {
				if strings.Contains(titleLower, kw) {
					score += 2
				}
				if strings.Contains(descLower, kw) {
					score++
				}
				continue
			}
			for _, t := range titleTokens {
				if t == kw {
					score += 2
				}
			}
			for _, t := range descTokens {
				if t == kw {
					score++
				}
			}
		}
		if score > bestScore {
			bestScore = score
			best = cat
		}
	}

	return best
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
