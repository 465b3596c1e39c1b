package taxonomy

import (
	"fmt"

	"github.com/caelum-dev/caelum/internal/model"
)

// Service provides lookup and classification over a taxonomy table.
type Service struct {
	entries    []Entry
	byCategory map[model.Category]Entry
}

// NewService creates a Service from entries in declaration order.
// Returns an error if a category is repeated, unset, or has no icon.
func NewService(entries []Entry) (*Service, error) {
	byCategory := make(map[model.Category]Entry, len(entries))
	for _, e := range entries {
		if !e.Category.IsSet() {
			return nil, fmt.Errorf("taxonomy entry with empty category")
		}
		if e.Icon == "" {
			return nil, fmt.Errorf("category %s has no icon", e.Category)
		}
		if _, dup := byCategory[e.Category]; dup {
			return nil, fmt.Errorf("duplicate category %s", e.Category)
		}
		byCategory[e.Category] = e
	}
	entries = append([]Entry(nil), entries...)
	return &Service{entries: entries, byCategory: byCategory}, nil
}

// MustDefault returns a Service over Default().
func MustDefault() *Service {
	svc, err := NewService(Default())
	if err != nil {
		panic(err)
	}
	return svc
}

// All returns a copy of the entries in declaration order.
func (s *Service) All() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		e.Keywords = append([]string(nil), e.Keywords...)
		out[i] = e
	}
	return out
}

// Categories returns the category labels in declaration order.
func (s *Service) Categories() []model.Category {
	cats := make([]model.Category, len(s.entries))
	for i, e := range s.entries {
		cats[i] = e.Category
	}
	return cats
}

// Get returns the entry for a category.
func (s *Service) Get(c model.Category) (Entry, bool) {
	e, ok := s.byCategory[c]
	return e, ok
}

// Icon returns the icon for a category, or "" if unknown.
func (s *Service) Icon(c model.Category) string {
	return s.byCategory[c].Icon
}
