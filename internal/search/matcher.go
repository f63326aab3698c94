// Package search resolves a free-text query against the menu catalog.
//
// Matching happens in two passes: category names first (with a special
// "non veg" alias covering the chicken and mutton categories), then a
// substring scan over item names and descriptions. Both passes always
// run and their results are unioned, category matches ranked first,
// deduplicated by item name.
package search

import (
	"strings"

	"github.com/samm329-ui/ProjectAtithi/internal/catalog"
)

const nonVegAlias = "non veg"

// Match returns the ordered, de-duplicated items matching query.
// An empty or whitespace-only query matches nothing — the caller
// decides whether that means "show everything".
func Match(query string, categories []catalog.MenuCategory) []catalog.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []catalog.MenuItem
	seen := make(map[string]bool)

	add := func(items []catalog.MenuItem) {
		for _, item := range items {
			if seen[item.Name] {
				continue
			}
			seen[item.Name] = true
			results = append(results, item)
		}
	}

	// pass 1: category names
	if strings.Contains(q, nonVegAlias) {
		for _, cat := range categories {
			name := strings.ToLower(cat.Name)
			if strings.Contains(name, "chicken") || strings.Contains(name, "mutton") {
				add(cat.Items)
			}
		}
	} else {
		for _, cat := range categories {
			if strings.Contains(strings.ToLower(cat.Name), q) {
				add(cat.Items)
				break
			}
		}
	}

	// pass 2: item names and descriptions
	for _, cat := range categories {
		for _, item := range cat.Items {
			if strings.Contains(strings.ToLower(item.Name), q) ||
				strings.Contains(strings.ToLower(item.Description), q) {
				add([]catalog.MenuItem{item})
			}
		}
	}

	return results
}
