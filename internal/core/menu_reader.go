package core

import "github.com/samm329-ui/ProjectAtithi/internal/catalog"

// MenuReader is the read-only slice of the catalog that other domains
// (cart, recommendations) depend on.
type MenuReader interface {
	Item(name string) (catalog.MenuItem, error)
	Categories() []catalog.MenuCategory
}
