package recommend

// Input is the questionnaire the visitor fills in.
type Input struct {
	Occasion string `json:"occasion"`
	Mood     string `json:"mood"`
	Flavor   string `json:"flavor"`
}

// Recommendation is the single dish the model picks, with its pitch.
type Recommendation struct {
	DishName string `json:"dishName"`
	Reason   string `json:"reason"`
}
