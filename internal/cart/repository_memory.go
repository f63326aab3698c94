package cart

import "sync"

type InMemoryRepository struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		carts: make(map[string]*Cart),
	}
}

// GetOrCreate returns the session's cart, creating an empty one on
// first touch. The lock guards the map only; each cart is mutated by
// a single browser session at a time.
func (r *InMemoryRepository) GetOrCreate(sessionID string) *Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[sessionID]
	if !ok {
		c = New()
		r.carts[sessionID] = c
	}
	return c
}
