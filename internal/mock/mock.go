// Package mock serves a fixed, hand-authored article dataset. It is the
// last tier of the fallback chain: when every live source fails or
// returns nothing, the caller still gets a non-empty, well-formed result
// and the page always renders.
package mock

import (
	"time"

	"github.com/gideongeny/dailynews/internal/news"
)

// SourceName identifies fallback articles in diagnostics.
const SourceName = "mock"

// Articles returns up to count articles. A non-generic category filters
// the dataset first; "general", "all" or empty returns from the top.
func Articles(category string, count int) []news.Article {
	all := dataset()

	if category != "" && category != news.DefaultCategory && category != "all" {
		var filtered []news.Article
		for _, a := range all {
			if a.Category == category {
				filtered = append(filtered, a)
			}
		}
		all = filtered
	}

	if count > 0 && len(all) > count {
		all = all[:count]
	}
	return all
}

// dataset builds the articles fresh per call so publishedAt stays
// anchored to the current time, matching what a live feed would return.
// Every item independently satisfies the article validation invariants.
func dataset() []news.Article {
	now := time.Now().UTC()
	at := func(hoursAgo int) string {
		return now.Add(-time.Duration(hoursAgo) * time.Hour).Format(time.RFC3339)
	}

	return []news.Article{
		{
			ID:          news.ID("Kenya Parliament Debates New Economic Reforms", "Daily News"),
			Title:       "Kenya Parliament Debates New Economic Reforms",
			Description: "Parliament members engage in heated debate over proposed economic reforms aimed at boosting GDP growth.",
			Content:     "In a landmark session, Kenya's Parliament discussed comprehensive economic reforms...",
			URL:         "https://dailynews.example/articles/kenya-parliament-economic-reforms",
			Image:       "/images/kenya-parliament.jpg",
			PublishedAt: at(0),
			Source:      "Daily News",
			Category:    "politics",
			Author:      "Political Desk",
			Country:     "ke",
		},
		{
			ID:          news.ID("Revolutionary AI App Transforms Accessibility", "Tech Daily"),
			Title:       "Revolutionary AI App Transforms Accessibility",
			Description: "Kenyan developers launch groundbreaking AI application that translates speech to sign language in real-time.",
			Content:     "A team of innovative Kenyan developers has created an AI-powered application...",
			URL:         "https://dailynews.example/articles/ai-app-accessibility",
			Image:       "/images/ai-sign-language.jpg",
			PublishedAt: at(1),
			Source:      "Tech Daily",
			Category:    "technology",
			Author:      "Tech Reporter",
			Country:     "ke",
		},
		{
			ID:          news.ID("Olunga Shatters National Record in 100m Sprint", "Sports Weekly"),
			Title:       "Olunga Shatters National Record in 100m Sprint",
			Description: "Star athlete sets new national record, raising hopes for upcoming international competitions.",
			Content:     "In a stunning display of athletic prowess, Olunga broke the long-standing national record...",
			URL:         "https://dailynews.example/articles/olunga-100m-record",
			Image:       "/images/olunga-record.jpg",
			PublishedAt: at(2),
			Source:      "Sports Weekly",
			Category:    "sports",
			Author:      "Sports Desk",
			Country:     "ke",
		},
		{
			ID:          news.ID("Specialty Coffee Exports Reach Record High", "Business Today"),
			Title:       "Specialty Coffee Exports Reach Record High",
			Description: "Kenya's specialty coffee industry experiences unprecedented growth, boosting export revenues.",
			Content:     "The specialty coffee sector in Kenya has achieved remarkable success this quarter...",
			URL:         "https://dailynews.example/articles/specialty-coffee-exports",
			Image:       "/images/specialty-coffee.jpg",
			PublishedAt: at(3),
			Source:      "Business Today",
			Category:    "business",
			Author:      "Business Reporter",
			Country:     "ke",
		},
		{
			ID:          news.ID("Maasai Olympics Empower Women Through Sports", "Culture Magazine"),
			Title:       "Maasai Olympics Empower Women Through Sports",
			Description: "Traditional games create new opportunities for women in Maasai communities.",
			Content:     "The Maasai Olympics initiative continues to break barriers and empower women...",
			URL:         "https://dailynews.example/articles/maasai-olympics-women",
			Image:       "/images/maasai-olympics.webp",
			PublishedAt: at(4),
			Source:      "Culture Magazine",
			Category:    "culture",
			Author:      "Culture Correspondent",
			Country:     "ke",
		},
		{
			ID:          news.ID("New Generation of Maasai Warriors Embrace Change", "Heritage Today"),
			Title:       "New Generation of Maasai Warriors Embrace Change",
			Description: "Young Maasai warriors balance traditional practices with modern education and values.",
			Content:     "A new generation of Maasai warriors is redefining what it means to preserve culture...",
			URL:         "https://dailynews.example/articles/maasai-warriors-change",
			Image:       "/images/maasai-warriors.jpg",
			PublishedAt: at(5),
			Source:      "Heritage Today",
			Category:    "culture",
			Author:      "Heritage Writer",
			Country:     "ke",
		},
		{
			ID:          news.ID("Nyayo Stadium Ready for CHAN and AFCON", "Sports Infrastructure"),
			Title:       "Nyayo Stadium Ready for CHAN and AFCON",
			Description: "Major renovations complete as stadium prepares to host continental tournaments.",
			Content:     "After extensive renovations, Nyayo Stadium is now ready to host major tournaments...",
			URL:         "https://dailynews.example/articles/nyayo-stadium-ready",
			Image:       "/images/nyayo-stadium.jpg",
			PublishedAt: at(6),
			Source:      "Sports Infrastructure",
			Category:    "sports",
			Author:      "Infrastructure Reporter",
			Country:     "ke",
		},
		{
			ID:          news.ID("Safaricom Rolls Out 5G Across Major Cities", "Tech News"),
			Title:       "Safaricom Rolls Out 5G Across Major Cities",
			Description: "Telecommunications giant expands 5G network coverage to improve connectivity.",
			Content:     "Safaricom has announced the successful rollout of 5G technology across Kenya...",
			URL:         "https://dailynews.example/articles/safaricom-5g-rollout",
			Image:       "/images/safaricom-5g.jpg",
			PublishedAt: at(7),
			Source:      "Tech News",
			Category:    "technology",
			Author:      "Tech Correspondent",
			Country:     "ke",
		},
		{
			ID:          news.ID("World Bank Approves Infrastructure Funding", "Economic Times"),
			Title:       "World Bank Approves Infrastructure Funding",
			Description: "Major infrastructure projects receive financial backing from international institutions.",
			Content:     "The World Bank has approved significant funding for infrastructure development...",
			URL:         "https://dailynews.example/articles/world-bank-funding",
			Image:       "/images/world-bank.jpg",
			PublishedAt: at(8),
			Source:      "Economic Times",
			Category:    "business",
			Author:      "Economic Analyst",
			Country:     "ke",
		},
		{
			ID:          news.ID("Kenyans Celebrate New Year with Traditional Nyama Choma", "Lifestyle Magazine"),
			Title:       "Kenyans Celebrate New Year with Traditional Nyama Choma",
			Description: "Communities across the country ring in the new year with traditional celebrations.",
			Content:     "As the new year begins, Kenyans gather for traditional nyama choma celebrations...",
			URL:         "https://dailynews.example/articles/new-year-nyama-choma",
			Image:       "/images/nyama-choma.jpg",
			PublishedAt: at(9),
			Source:      "Lifestyle Magazine",
			Category:    "entertainment",
			Author:      "Lifestyle Writer",
			Country:     "ke",
		},
		{
			ID:          news.ID("Gen-Z Activists Rally After Blogger's Death", "Social Affairs"),
			Title:       "Gen-Z Activists Rally After Blogger's Death",
			Description: "Young activists demand justice and accountability in nationwide demonstrations.",
			Content:     "Following the tragic death of a prominent blogger, Gen-Z activists have mobilized...",
			URL:         "https://dailynews.example/articles/genz-activists-rally",
			Image:       "/images/genz-rally.jpg",
			PublishedAt: at(10),
			Source:      "Social Affairs",
			Category:    "politics",
			Author:      "Social Reporter",
			Country:     "ke",
		},
		{
			ID:          news.ID("Healthcare Innovation Improves Rural Access", "Health Weekly"),
			Title:       "Healthcare Innovation Improves Rural Access",
			Description: "New mobile health clinics bring medical services to remote communities.",
			Content:     "A groundbreaking healthcare initiative is bringing medical services to rural areas...",
			URL:         "https://dailynews.example/articles/rural-healthcare-innovation",
			Image:       "/images/rural-health.jpg",
			PublishedAt: at(11),
			Source:      "Health Weekly",
			Category:    "health",
			Author:      "Health Reporter",
			Country:     "ke",
		},
	}
}
