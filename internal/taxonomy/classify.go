package taxonomy

import (
	"strings"

	"github.com/caelum-dev/caelum/internal/model"
)

// Classify tags e with the category whose keyword appears in its description.
// Every category and keyword is scanned; when several categories match, the
// one declared last wins. Returns false if nothing matched, leaving e untouched.
//
// TODO: confirm last-match-wins with the product owner; first-match may have
// been the intent.
func (s *Service) Classify(e *model.Expense) bool {
	name := strings.ToLower(e.Name)
	matched := false
	for _, entry := range s.entries {
		for _, kw := range entry.Keywords {
			if strings.Contains(name, kw) {
				e.Tag(entry.Category, entry.Icon)
				matched = true
			}
		}
	}
	return matched
}
