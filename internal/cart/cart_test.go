package cart

import (
	"math"
	"testing"

	"github.com/samm329-ui/ProjectAtithi/internal/catalog"
)

func strike(v float64) *float64 { return &v }

func butterChicken() catalog.MenuItem {
	return catalog.MenuItem{Name: "Butter Chicken", Price: 200, OriginalPrice: strike(220), Description: "Our signature dish!"}
}

func kadaiPaneer() catalog.MenuItem {
	return catalog.MenuItem{Name: "Kadai Paneer", Price: 170, OriginalPrice: strike(190), Description: "Paneer in a traditional Indian wok."}
}

func tea() catalog.MenuItem {
	return catalog.MenuItem{Name: "Tea", Price: 20, Description: "A hot cup of classic Indian tea."}
}

func TestAddNewItem(t *testing.T) {
	c := New()

	qty := c.Add(butterChicken())
	if qty != 1 {
		t.Fatalf("expected quantity 1, got %d", qty)
	}
	if len(c.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Lines))
	}
}

func TestAddIncrementsExistingLine(t *testing.T) {
	c := New()
	c.Add(butterChicken())

	qty := c.Add(butterChicken())
	if qty != 2 {
		t.Fatalf("expected quantity 2, got %d", qty)
	}
	if len(c.Lines) != 1 {
		t.Fatalf("identity is by name — expected 1 line, got %d", len(c.Lines))
	}
}

func TestAddKeepsPriceSnapshot(t *testing.T) {
	c := New()
	c.Add(butterChicken())

	// the menu price drifts between the two clicks
	drifted := butterChicken()
	drifted.Price = 250
	c.Add(drifted)

	if c.Lines[0].Item.Price != 200 {
		t.Fatalf("line price refreshed to %v; must keep add-time snapshot", c.Lines[0].Item.Price)
	}
	if c.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", c.Lines[0].Quantity)
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	c := New()
	c.Add(butterChicken())
	c.Add(tea())
	c.Add(kadaiPaneer())
	c.Add(tea()) // quantity change must not reorder

	want := []string{"Butter Chicken", "Tea", "Kadai Paneer"}
	for i, name := range want {
		if c.Lines[i].Item.Name != name {
			t.Fatalf("expected line %d to be %s, got %s", i, name, c.Lines[i].Item.Name)
		}
	}
}

func TestRemoveDecrementsThenDeletes(t *testing.T) {
	c := New()
	c.Add(butterChicken())
	c.Add(butterChicken())

	qty, existed := c.Remove("Butter Chicken")
	if !existed || qty != 1 {
		t.Fatalf("expected (1, true), got (%d, %v)", qty, existed)
	}
	if len(c.Lines) != 1 {
		t.Fatalf("line must survive a decrement")
	}

	qty, existed = c.Remove("Butter Chicken")
	if !existed || qty != 0 {
		t.Fatalf("expected (0, true), got (%d, %v)", qty, existed)
	}
	if len(c.Lines) != 0 {
		t.Fatalf("line at quantity 1 must be deleted, not kept at zero")
	}
}

func TestRemoveUnknownNameIsNoop(t *testing.T) {
	c := New()
	c.Add(tea())

	qty, existed := c.Remove("Ghost Curry")
	if existed || qty != 0 {
		t.Fatalf("expected (0, false), got (%d, %v)", qty, existed)
	}
	if len(c.Lines) != 1 || c.Lines[0].Quantity != 1 {
		t.Fatalf("no-op removal changed the cart: %+v", c.Lines)
	}

	// and on an empty cart
	empty := New()
	if _, existed := empty.Remove("Tea"); existed {
		t.Fatalf("removal from empty cart reported a line")
	}
}

func TestRemoveUndoesAdd(t *testing.T) {
	c := New()
	c.Add(tea())
	c.Add(butterChicken())

	before := make([]Line, len(c.Lines))
	copy(before, c.Lines)

	c.Add(butterChicken())
	c.Remove("Butter Chicken")

	if len(c.Lines) != len(before) {
		t.Fatalf("expected %d lines, got %d", len(before), len(c.Lines))
	}
	for i := range before {
		if c.Lines[i].Item.Name != before[i].Item.Name || c.Lines[i].Quantity != before[i].Quantity {
			t.Fatalf("cart not restored: %+v vs %+v", c.Lines, before)
		}
	}
}

func TestQuantityMonotonicity(t *testing.T) {
	const n, m = 7, 4

	c := New()
	for i := 0; i < n; i++ {
		c.Add(tea())
	}
	for i := 0; i < m; i++ {
		c.Remove("Tea")
	}

	if c.Lines[0].Quantity != n-m {
		t.Fatalf("expected quantity %d, got %d", n-m, c.Lines[0].Quantity)
	}

	for i := 0; i < n-m; i++ {
		c.Remove("Tea")
	}
	if len(c.Lines) != 0 {
		t.Fatalf("line must be absent after removing all %d", n)
	}
}

func TestDerivedTotals(t *testing.T) {
	c := New()
	c.Add(butterChicken())
	c.Add(butterChicken())
	c.Add(tea())

	if got := c.TotalItems(); got != 3 {
		t.Fatalf("expected 3 items, got %d", got)
	}
	if got := c.Subtotal(); math.Abs(got-420) > 1e-9 {
		t.Fatalf("expected subtotal 420, got %v", got)
	}
	// Butter Chicken saves 20 apiece; Tea has no discount
	if got := c.TotalSavings(); math.Abs(got-40) > 1e-9 {
		t.Fatalf("expected savings 40, got %v", got)
	}
}

func TestSavingsSingleLine(t *testing.T) {
	c := New()
	c.Add(kadaiPaneer())

	if got := c.TotalSavings(); math.Abs(got-20) > 1e-9 {
		t.Fatalf("expected savings 20, got %v", got)
	}
}

func TestEmptyClearsEverything(t *testing.T) {
	c := New()
	c.Add(butterChicken())
	c.Add(tea())
	c.Add(tea())

	c.Empty()

	if len(c.Lines) != 0 || c.TotalItems() != 0 || c.Subtotal() != 0 || c.TotalSavings() != 0 {
		t.Fatalf("cart not empty after Empty(): %+v", c)
	}

	// emptying an already-empty cart is fine
	c.Empty()
	if c.TotalItems() != 0 {
		t.Fatalf("double Empty() broke the cart")
	}
}
