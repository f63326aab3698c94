package reviews

// Review is one guest write-up on the public feed. Append-only:
// reviews are never edited or deleted during a session.
type Review struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Body     string `json:"review"`
	AvatarID string `json:"avatar_id"`
}

// SeedReviews are the launch reviews the site ships with.
func SeedReviews() []Review {
	return []Review{
		{
			ID:       "seed-1",
			Name:     "Lusy",
			Title:    "Local Guide · Frequent Traveler",
			Body:     "We often visit Atithi Family Restaurant while traveling on this route, and it has become one of our favorite stopover spots. The food is consistently fresh and flavorful. Their thali is wholesome and perfectly balanced. A special mention goes to the posto bora, which is crispy, flavorful, and absolutely mouth-watering.",
			AvatarID: "review-avatar-1",
		},
		{
			ID:       "seed-2",
			Name:     "Pallavi Chandel",
			Title:    "Local Guide",
			Body:     "A delicious Bengali vegetarian thali at Atithi — balanced, wholesome, and truly satisfying. The food quality was impressive, service was excellent, and the overall atmosphere felt comfortable and welcoming. Great for a meal with a small group.",
			AvatarID: "review-avatar-2",
		},
		{
			ID:       "seed-3",
			Name:     "Snehasis Meta",
			Title:    "Customer",
			Body:     "I visited this restaurant recently and faced a small issue with billing. Although the amount was small, accuracy in billing is important. I hope the restaurant takes more care with this in the future. The food itself was decent for the price.",
			AvatarID: "review-avatar-3",
		},
		{
			ID:       "seed-4",
			Name:     "Rohan Sharma",
			Title:    "Food Blogger",
			Body:     "The ambiance is perfect for a family dinner. I tried their Mutton Kasa and it was rich in flavor and perfectly cooked. The staff was courteous and the service was quick. A must-visit if you are on the highway.",
			AvatarID: "review-avatar-4",
		},
		{
			ID:       "seed-5",
			Name:     "Priya Singh",
			Title:    "Professional",
			Body:     "Stopped by for a quick lunch and was pleasantly surprised. The Veg Pulao was fragrant and light. The place is very hygienic and has a calm atmosphere which is rare for a highway restaurant. Will definitely come back.",
			AvatarID: "review-avatar-5",
		},
	}
}
