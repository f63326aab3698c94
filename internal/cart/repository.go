package cart

// Repository hands out the cart owned by a session. Carts live only in
// memory for the duration of a visit — never persisted.
type Repository interface {
	GetOrCreate(sessionID string) *Cart
}
