package catalog

import (
	"errors"
	"math"
	"testing"
)

func testCategories() []MenuCategory {
	return []MenuCategory{
		{
			Name: "Chicken Dishes",
			Items: []MenuItem{
				{Name: "Butter Chicken", Price: 200, OriginalPrice: strike(220), Description: "Our signature dish!", Rating: 4, RatingsCount: 2},
				{Name: "Chicken Kasa", Price: 150, Description: "Slow-cooked chicken curry.", Rating: 5, RatingsCount: 10},
			},
		},
		{
			Name: "Rolls",
			Items: []MenuItem{
				{Name: "Chicken Roll", Price: 70, Description: "Juicy chicken chunks in a paratha.", Rating: 5, RatingsCount: 300},
			},
		},
	}
}

func TestRateUpdatesItem(t *testing.T) {
	service := NewService(NewInMemoryRepository(testCategories()))

	item, err := service.Rate("Butter Chicken", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.RatingsCount != 3 {
		t.Fatalf("expected 3 ratings, got %d", item.RatingsCount)
	}
	want := 13.0 / 3.0
	if math.Abs(item.Rating-want) > 1e-9 {
		t.Fatalf("expected rating %v, got %v", want, item.Rating)
	}
}

func TestRateConvergesAcrossViews(t *testing.T) {
	// the list view and an open detail view must read the same
	// value after a rating lands.
	service := NewService(NewInMemoryRepository(testCategories()))

	rated, err := service.Rate("Chicken Kasa", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	detail, err := service.Item("Chicken Kasa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Rating != rated.Rating || detail.RatingsCount != rated.RatingsCount {
		t.Fatalf("detail view %v/%d diverged from rated %v/%d",
			detail.Rating, detail.RatingsCount, rated.Rating, rated.RatingsCount)
	}

	var listed MenuItem
	for _, cat := range service.Categories() {
		for _, it := range cat.Items {
			if it.Name == "Chicken Kasa" {
				listed = it
			}
		}
	}
	if listed.Rating != rated.Rating || listed.RatingsCount != rated.RatingsCount {
		t.Fatalf("list view %v/%d diverged from rated %v/%d",
			listed.Rating, listed.RatingsCount, rated.Rating, rated.RatingsCount)
	}
}

func TestRateRejectsOutOfRange(t *testing.T) {
	service := NewService(NewInMemoryRepository(testCategories()))

	for _, bad := range []int{0, 6, -1, 100} {
		if _, err := service.Rate("Butter Chicken", bad); !errors.Is(err, ErrRatingOutOfRange) {
			t.Fatalf("rating %d: expected ErrRatingOutOfRange, got %v", bad, err)
		}
	}

	// a rejected rating must not touch the item
	item, _ := service.Item("Butter Chicken")
	if item.RatingsCount != 2 {
		t.Fatalf("rejected rating mutated the item: count %d", item.RatingsCount)
	}
}

func TestRateUnknownItem(t *testing.T) {
	service := NewService(NewInMemoryRepository(testCategories()))

	if _, err := service.Rate("Ghost Curry", 4); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestCategoriesReturnsCopies(t *testing.T) {
	service := NewService(NewInMemoryRepository(testCategories()))

	cats := service.Categories()
	cats[0].Items[0].Price = 9999

	fresh, err := service.Item("Butter Chicken")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fresh.Price != 200 {
		t.Fatalf("caller mutation leaked into the catalog: price %v", fresh.Price)
	}
}
