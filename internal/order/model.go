package order

// Fulfillment mode decides which customer fields are mandatory.
const (
	ModeDelivery = "delivery"
	ModeDineIn   = "dine-in"
)

// Customer carries the order-form fields. It exists only long enough
// to render a message — never stored.
type Customer struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Fulfillment string `json:"fulfillment"`
	Address     string `json:"address"`
	Pincode     string `json:"pincode"`

	// optional requested slot
	Date string `json:"date"`
	Time string `json:"time"`
}
