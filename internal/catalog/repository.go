package catalog

import "errors"

var ErrItemNotFound = errors.New("menu item not found")

type Repository interface {
	Categories() []MenuCategory
	FindItem(name string) (MenuItem, error)

	// SaveRating writes a new running average back to the named item.
	SaveRating(name string, rating float64, count int) error
}
