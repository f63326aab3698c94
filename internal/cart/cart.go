package cart

import "github.com/samm329-ui/ProjectAtithi/internal/catalog"

// Add puts one more of item into the cart. An existing line (matched
// by item name) is incremented in place and keeps its original item
// snapshot; otherwise a new line with quantity 1 is appended. Returns
// the resulting quantity so the caller can tell a first add (1) from
// an increment (>1).
func (c *Cart) Add(item catalog.MenuItem) int {
	for i := range c.Lines {
		if c.Lines[i].Item.Name == item.Name {
			c.Lines[i].Quantity++
			return c.Lines[i].Quantity
		}
	}

	c.Lines = append(c.Lines, Line{Item: item, Quantity: 1})
	return 1
}

// Remove takes one of the named item out of the cart. A line at
// quantity 1 is deleted entirely. An unknown name is a no-op, not an
// error. Returns the remaining quantity (0 when the line is gone) and
// whether a line existed at all, which is what the caller needs to
// pick between "decremented", "removed", and "nothing happened".
func (c *Cart) Remove(name string) (int, bool) {
	for i := range c.Lines {
		if c.Lines[i].Item.Name != name {
			continue
		}

		if c.Lines[i].Quantity > 1 {
			c.Lines[i].Quantity--
			return c.Lines[i].Quantity, true
		}

		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		return 0, true
	}
	return 0, false
}

// Empty clears every line unconditionally.
func (c *Cart) Empty() {
	c.Lines = nil
}
