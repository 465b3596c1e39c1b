package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caelum-dev/caelum/internal/model"
)

func TestClassify(t *testing.T) {
	svc := MustDefault()

	tests := []struct {
		desc string
		want model.Category
		icon string
	}{
		{"Uber* Eats Toronto", model.CategoryRestaurants, "🍜"},
		{"STEAM PURCHASE", model.CategoryGames, "🎮"},
		{"REAL CANADIAN SUPERSTORE #1077", model.CategoryGroceries, "🥦"},
		{"BITWARDEN INC", model.CategoryRecurring, "💵"},
		{"AMAZON.CA MARKETPLACE", model.CategoryShopping, "🛍"},
		{"Bitwarden Bar", model.CategoryRestaurants, "🍜"},
	}
	for _, tt := range tests {
		e := model.Expense{Name: tt.desc}
		assert.True(t, svc.Classify(&e), tt.desc)
		assert.Equal(t, tt.want, e.Category, tt.desc)
		assert.Equal(t, tt.icon, e.Icon, tt.desc)
	}
}

func TestClassify_NoMatch(t *testing.T) {
	svc := MustDefault()
	e := model.Expense{Name: "CITY OF TORONTO PARKING"}
	assert.False(t, svc.Classify(&e))
	assert.False(t, e.Category.IsSet())
	assert.Empty(t, e.Icon)
}

func TestClassify_LaterCategoryWins(t *testing.T) {
	// "steam" is a Games keyword, "tea" a Restaurants keyword; Games is
	// declared after Restaurants.
	svc := MustDefault()
	e := model.Expense{Name: "Steam Games Store"}
	svc.Classify(&e)
	assert.Equal(t, model.CategoryGames, e.Category)

	// Keyword position inside its own list does not matter.
	svc, err := NewService([]Entry{
		{Category: model.CategoryGroceries, Icon: "g", Keywords: []string{"zzz", "milk"}},
		{Category: model.CategoryShopping, Icon: "s", Keywords: []string{"store"}},
	})
	assert.NoError(t, err)
	e = model.Expense{Name: "milk store"}
	svc.Classify(&e)
	assert.Equal(t, model.CategoryShopping, e.Category)
	assert.Equal(t, "s", e.Icon)

	// Swapping the declaration order swaps the winner.
	svc, err = NewService([]Entry{
		{Category: model.CategoryShopping, Icon: "s", Keywords: []string{"store"}},
		{Category: model.CategoryGroceries, Icon: "g", Keywords: []string{"zzz", "milk"}},
	})
	assert.NoError(t, err)
	e = model.Expense{Name: "milk store"}
	svc.Classify(&e)
	assert.Equal(t, model.CategoryGroceries, e.Category)
}

func TestClassify_Overwrites(t *testing.T) {
	svc := MustDefault()
	e := model.Expense{Name: "steam"}
	e.Tag(model.CategoryMisc, "⭐️")
	svc.Classify(&e)
	assert.Equal(t, model.CategoryGames, e.Category)
}
