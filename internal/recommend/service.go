package recommend

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/samm329-ui/ProjectAtithi/internal/core"
)

// Price tiers the prompt steers between.
const (
	premiumFloor   = 200
	midRangeFloor  = 100
	midRangeCeiling = 200
)

type Service struct {
	client Client
	menu   core.MenuReader
}

func NewService(client Client, menu core.MenuReader) *Service {
	return &Service{client: client, menu: menu}
}

// Recommend asks the model for one dish matching the questionnaire.
// A failure here is fully isolated — it never touches cart or catalog
// state, the caller just shows the error and lets the visitor retry.
func (s *Service) Recommend(ctx context.Context, in Input) (*Recommendation, error) {
	if in.Occasion == "" || in.Mood == "" || in.Flavor == "" {
		return nil, errors.New("occasion, mood and flavor are required")
	}

	premium, midRange := s.dishTiers()
	prompt := BuildRecommendationPrompt(in, premium, midRange)

	raw, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	jsonText := extractJSON(raw)
	if jsonText == "" {
		return nil, errInvalidOutput
	}

	var rec Recommendation
	if err := json.Unmarshal([]byte(jsonText), &rec); err != nil {
		return nil, errInvalidOutput
	}
	if rec.DishName == "" {
		return nil, errInvalidOutput
	}

	return &rec, nil
}

func (s *Service) dishTiers() (premium, midRange []string) {
	for _, cat := range s.menu.Categories() {
		for _, item := range cat.Items {
			switch {
			case item.Price >= premiumFloor:
				premium = append(premium, item.Name)
			case item.Price > midRangeFloor && item.Price < midRangeCeiling:
				midRange = append(midRange, item.Name)
			}
		}
	}
	return premium, midRange
}
