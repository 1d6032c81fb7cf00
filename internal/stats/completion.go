package stats

import "math"

// Completion summarizes completed counts over a trailing day window.
type Completion struct {
	Days      int
	Completed int
	Rate      float64 // percentage, rounded to 2 decimals
}

// NewCompletion builds a Completion for the given window. A window of zero
// or fewer days yields a rate of 0.0 rather than dividing by zero.
func NewCompletion(days, completed int) Completion {
	return Completion{
		Days:      days,
		Completed: completed,
		Rate:      completionRate(days, completed),
	}
}

func completionRate(days, completed int) float64 {
	if days <= 0 {
		return 0.0
	}
	return math.Round(float64(completed)/float64(days)*100*100) / 100
}
