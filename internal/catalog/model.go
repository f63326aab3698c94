package catalog

// MenuItem is one orderable dish. Name is the identity everywhere —
// there are no numeric IDs in the menu.
type MenuItem struct {
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Description   string   `json:"description"`
	Rating        float64  `json:"rating"`
	RatingsCount  int      `json:"ratings_count"`
}

// MenuCategory is a named, ordered group of items.
// Membership never changes within a session.
type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}
