// Package catalog derives the visible part of the food catalog for the
// listing screen from the selected category and the search text.
package catalog

import (
	"strings"

	"github.com/wichananm65/food-order-backend/internal/food"
)

// Filter holds the two independent listing inputs. A nil Category means no
// category filter; an empty Query means no text filter.
type Filter struct {
	Category *int
	Query    string
}

// Visible returns the foods of catalog matching every filter that is set.
// Names match on a case-insensitive substring. Catalog order is kept and the
// result is never nil.
func Visible(catalog []food.Food, f Filter) []food.Food {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]food.Food, 0, len(catalog))
	for _, item := range catalog {
		if f.Category != nil && item.CategoryID != *f.Category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Selection is the listing screen's selected category. Selecting the
// category that is already selected clears it.
type Selection struct {
	current *int
}

// Select toggles id and returns the resulting selection.
func (s *Selection) Select(id int) *int {
	if s.current != nil && *s.current == id {
		s.current = nil
		return nil
	}
	s.current = &id
	return s.Current()
}

// Current returns a copy of the selected category, or nil.
func (s *Selection) Current() *int {
	if s.current == nil {
		return nil
	}
	id := *s.current
	return &id
}

// Filter combines the selection with a search text.
func (s *Selection) Filter(query string) Filter {
	return Filter{Category: s.Current(), Query: query}
}
