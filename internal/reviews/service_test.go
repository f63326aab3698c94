package reviews

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSubmitPrependsNewest(t *testing.T) {
	service := NewService(SeedReviews())

	review, err := service.Submit("Amit Das", "Regular", "The biryani here is unmatched on this stretch of highway.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	feed := service.List()
	if feed[0].ID != review.ID {
		t.Fatalf("new review must lead the feed, got %s first", feed[0].Name)
	}
	if len(feed) != len(SeedReviews())+1 {
		t.Fatalf("expected %d reviews, got %d", len(SeedReviews())+1, len(feed))
	}
}

func TestSubmitRequiresAllFields(t *testing.T) {
	service := NewService(nil)

	cases := [][3]string{
		{"", "Customer", "Great food."},
		{"Amit Das", "", "Great food."},
		{"Amit Das", "Customer", ""},
	}
	for _, tc := range cases {
		if _, err := service.Submit(tc[0], tc[1], tc[2]); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields for %v, got %v", tc, err)
		}
	}
}

func TestSubmitEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewService(SeedReviews()))
	r.GET("/reviews", handler.List)
	r.POST("/reviews", handler.Submit)

	payload := map[string]string{
		"name":   "Amit Das",
		"title":  "Regular",
		"review": "The biryani here is unmatched on this stretch of highway.",
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/reviews", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Reviews []Review `json:"reviews"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Reviews) != 6 || resp.Reviews[0].Name != "Amit Das" {
		t.Fatalf("unexpected feed: %d reviews, first %s", len(resp.Reviews), resp.Reviews[0].Name)
	}
}
