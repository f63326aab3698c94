package cart

import (
	"github.com/samm329-ui/ProjectAtithi/internal/core"
)

// Outcome tells the caller which of the three user-visible transitions
// an operation produced, without re-deriving cart state.
type Outcome string

const (
	OutcomeAdded       Outcome = "added"
	OutcomeIncremented Outcome = "incremented"
	OutcomeDecremented Outcome = "decremented"
	OutcomeRemoved     Outcome = "removed"
	OutcomeNoop        Outcome = "noop"
)

type Service struct {
	repo Repository
	menu core.MenuReader
}

func NewService(repo Repository, menu core.MenuReader) *Service {
	return &Service{repo: repo, menu: menu}
}

func (s *Service) Get(sessionID string) *Cart {
	return s.repo.GetOrCreate(sessionID)
}

// Add snapshots the named dish from the catalog into the session's
// cart. The snapshot is taken here, once — re-adding the same dish
// later only bumps the quantity.
func (s *Service) Add(sessionID, itemName string) (Outcome, int, error) {
	item, err := s.menu.Item(itemName)
	if err != nil {
		return OutcomeNoop, 0, err
	}

	c := s.repo.GetOrCreate(sessionID)
	qty := c.Add(item)
	if qty == 1 {
		return OutcomeAdded, qty, nil
	}
	return OutcomeIncremented, qty, nil
}

// Remove decrements the named line, deleting it when it hits zero.
// An unknown name is a defined no-op.
func (s *Service) Remove(sessionID, itemName string) (Outcome, int) {
	c := s.repo.GetOrCreate(sessionID)

	qty, existed := c.Remove(itemName)
	switch {
	case !existed:
		return OutcomeNoop, 0
	case qty == 0:
		return OutcomeRemoved, 0
	default:
		return OutcomeDecremented, qty
	}
}

func (s *Service) Empty(sessionID string) {
	s.repo.GetOrCreate(sessionID).Empty()
}
