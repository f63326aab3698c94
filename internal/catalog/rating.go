package catalog

// ApplyRating folds a single new rating into a running average.
// Online mean — individual ratings are never stored, so a submitted
// rating cannot be retracted or corrected later.
//
// Precondition: rating is in [1,5] and count >= 0. The service boundary
// rejects anything else; this function does not clamp.
func ApplyRating(avg float64, count int, rating int) (float64, int) {
	newCount := count + 1
	newAvg := (avg*float64(count) + float64(rating)) / float64(newCount)
	return newAvg, newCount
}
