package taxonomy

import "github.com/caelum-dev/caelum/internal/model"

// Entry pairs a category with its icon and match keywords.
type Entry struct {
	Category model.Category
	Icon     string
	Keywords []string // lower case
}

// Default returns the built-in taxonomy in declaration order. Classification
// depends on this order.
func Default() []Entry {
	return []Entry{
		{
			Category: model.CategoryRecurring,
			Icon:     "💵",
			Keywords: []string{"amazon web services", "apple.com/bill", "bitwarden", "proton", "insurance"},
		},
		{
			Category: model.CategoryGroceries,
			Icon:     "🥦",
			Keywords: []string{"supermarket", "wholesale", "superstore"},
		},
		{
			Category: model.CategoryRestaurants,
			Icon:     "🍜",
			Keywords: []string{
				"ubereats", "uber* eats", "restaurant", "resta", "bar", "grill", "cuisine",
				"kitchen", "eatery", "liquor", "coffee", "starbucks", "cafe", "tea", "sushi", "bbq",
			},
		},
		{
			Category: model.CategoryGames,
			Icon:     "🎮",
			Keywords: []string{"games", "game", "steam"},
		},
		{
			Category: model.CategoryShopping,
			Icon:     "🛍",
			Keywords: []string{"amazon.ca", "mec"},
		},
		// Misc is only assigned by hand.
		{
			Category: model.CategoryMisc,
			Icon:     "⭐️",
		},
	}
}
