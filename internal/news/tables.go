package news

// Categories translates a front-end category name into the generic
// query parameters the adapters understand. Data, not control flow:
// adding a category is a table entry, never a new branch.
var Categories = map[string]Params{
	"politics":      {Category: "politics", Query: "politics,government,election"},
	"economy":       {Category: "business", Query: "economy,finance,market"},
	"world":         {Category: "world", Query: "international,global"},
	"culture":       {Category: "entertainment", Query: "culture,arts,heritage"},
	"business":      {Category: "business", Query: "business,company,trade"},
	"sports":        {Category: "sports", Query: "sports,football,athletics"},
	"tech":          {Category: "technology", Query: "technology,innovation,digital"},
	"kenya":         {Country: "ke", Query: "kenya"},
	"africa":        {Query: "africa,african"},
	"fashion":       {Category: "entertainment", Query: "fashion,style,design"},
	"health":        {Category: "health", Query: "health,medical,wellness"},
	"entertainment": {Category: "entertainment", Query: "entertainment,celebrity,music,film"},
}

// Regions translates a region name into query parameters.
var Regions = map[string]Params{
	"kenya":  {Country: "ke", Query: "kenya"},
	"africa": {Query: "africa"},
	"world":  {},
}

// placeholders maps categories to the bundled fallback images served
// when an upstream article carries no image of its own.
var placeholders = map[string]string{
	"politics":      "/images/kenya-parliament.jpg",
	"business":      "/images/world-bank.jpg",
	"economy":       "/images/world-bank.jpg",
	"technology":    "/images/safaricom-5g.jpg",
	"sports":        "/images/olunga-record.jpg",
	"culture":       "/images/maasai-olympics.webp",
	"health":        "/images/world-bank.jpg",
	"world":         "/images/world-bank.jpg",
	"entertainment": "/images/nyama-choma.jpg",
	"general":       "/images/world-bank.jpg",
}

// Placeholder returns the category-specific fallback image.
func Placeholder(category string) string {
	if img, ok := placeholders[category]; ok {
		return img
	}
	return placeholders[DefaultCategory]
}
