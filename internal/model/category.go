package model

// Category is a budget label from the fixed taxonomy.
type Category string

const (
	CategoryNone        Category = ""
	CategoryRecurring   Category = "Recurring"
	CategoryGroceries   Category = "Groceries"
	CategoryRestaurants Category = "Restaurants"
	CategoryGames       Category = "Games"
	CategoryShopping    Category = "Shopping"
	CategoryMisc        Category = "Misc"
)

// IsSet reports whether the category has been assigned.
func (c Category) IsSet() bool { return c != CategoryNone }

// SelectOption is one option of a remote select property.
type SelectOption struct {
	ID    string
	Name  string
	Color string
}

// Schema is a snapshot of the remote database's select properties.
type Schema struct {
	Cards  map[string]string // option name -> option id
	Months map[string]string
	Tags   []SelectOption // remote order preserved
}

// TagNames returns the names of the tag options in remote order.
func (s Schema) TagNames() []string {
	names := make([]string, len(s.Tags))
	for i, o := range s.Tags {
		names[i] = o.Name
	}
	return names
}
