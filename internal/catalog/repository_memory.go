package catalog

import "sync"

// InMemoryRepository holds the catalog for the lifetime of the process.
// Persistence is deliberately absent — the menu is static data and
// ratings only need to survive as long as the session that cast them.
type InMemoryRepository struct {
	mu         sync.RWMutex
	categories []MenuCategory
}

func NewInMemoryRepository(categories []MenuCategory) *InMemoryRepository {
	return &InMemoryRepository{categories: categories}
}

func (r *InMemoryRepository) Categories() []MenuCategory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]MenuCategory, len(r.categories))
	for i, cat := range r.categories {
		items := make([]MenuItem, len(cat.Items))
		copy(items, cat.Items)
		out[i] = MenuCategory{Name: cat.Name, Items: items}
	}
	return out
}

func (r *InMemoryRepository) FindItem(name string) (MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cat := range r.categories {
		for _, item := range cat.Items {
			if item.Name == name {
				return item, nil
			}
		}
	}
	return MenuItem{}, ErrItemNotFound
}

func (r *InMemoryRepository) SaveRating(name string, rating float64, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for ci := range r.categories {
		for ii := range r.categories[ci].Items {
			if r.categories[ci].Items[ii].Name == name {
				r.categories[ci].Items[ii].Rating = rating
				r.categories[ci].Items[ii].RatingsCount = count
				return nil
			}
		}
	}
	return ErrItemNotFound
}
