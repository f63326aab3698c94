package cart

import "github.com/samm329-ui/ProjectAtithi/internal/catalog"

// Line is one (item, quantity) pair. Item is a snapshot taken when the
// dish was first added — a later catalog price change never retouches
// an existing line, so the customer pays what they saw when they
// clicked add.
type Line struct {
	Item     catalog.MenuItem `json:"item"`
	Quantity int              `json:"quantity"`
}

// Cart is an ordered collection of lines, at most one per item name.
// Insertion order of first-add is stable under quantity changes.
// Totals are derived on every read and never stored.
type Cart struct {
	Lines []Line `json:"lines"`
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

func (c *Cart) Subtotal() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Item.Price * float64(line.Quantity)
	}
	return total
}

// TotalSavings sums the per-line discount over lines that carry a
// pre-discount price.
func (c *Cart) TotalSavings() float64 {
	var total float64
	for _, line := range c.Lines {
		if line.Item.OriginalPrice != nil {
			total += (*line.Item.OriginalPrice - line.Item.Price) * float64(line.Quantity)
		}
	}
	return total
}
