package catalog

import "errors"

var ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Categories() []MenuCategory {
	return s.repo.Categories()
}

func (s *Service) Item(name string) (MenuItem, error) {
	return s.repo.FindItem(name)
}

// Rate folds a single visitor rating into the named item's running
// average. Out-of-range ratings are rejected, never clamped — a bad
// value here is a caller bug and should surface loudly.
func (s *Service) Rate(name string, rating int) (MenuItem, error) {
	if rating < 1 || rating > 5 {
		return MenuItem{}, ErrRatingOutOfRange
	}

	item, err := s.repo.FindItem(name)
	if err != nil {
		return MenuItem{}, err
	}

	avg, count := ApplyRating(item.Rating, item.RatingsCount, rating)
	if err := s.repo.SaveRating(name, avg, count); err != nil {
		return MenuItem{}, err
	}

	item.Rating = avg
	item.RatingsCount = count
	return item, nil
}
