package reviews

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrMissingFields = errors.New("name, title and review are required")

// Service keeps the in-memory review feed, newest first. Submissions
// only need presence checks — there is no moderation pipeline.
type Service struct {
	mu      sync.RWMutex
	reviews []Review
}

func NewService(seed []Review) *Service {
	reviews := make([]Review, len(seed))
	copy(reviews, seed)
	return &Service{reviews: reviews}
}

func (s *Service) List() []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

func (s *Service) Submit(name, title, body string) (Review, error) {
	if name == "" || title == "" || body == "" {
		return Review{}, ErrMissingFields
	}

	review := Review{
		ID:       uuid.New().String(),
		Name:     name,
		Title:    title,
		Body:     body,
		AvatarID: "review-avatar-" + uuid.New().String(),
	}

	s.mu.Lock()
	s.reviews = append([]Review{review}, s.reviews...)
	s.mu.Unlock()

	return review, nil
}
