package classifier

import "math"

// Margin bands for the confidence penalty. They are fixed and
// independent of Classifier.MarginHybrid.
const (
	narrowMargin  = 0.06
	modestMargin  = 0.10
	narrowPenalty = 15
	modestPenalty = 7
)

// Confidence turns the top distance and the top-two margin into a score in
// [0, 100]. A distance of 1 or more yields a base of 0; close runners-up
// subtract a fixed penalty.
func Confidence(topDistance, margin float64) int {
	base := math.Max(0, 1-math.Min(1, topDistance)) * 100
	switch {
	case margin <= narrowMargin:
		base -= narrowPenalty
	case margin <= modestMargin:
		base -= modestPenalty
	}
	return int(math.RoundToEven(math.Max(0, math.Min(100, base))))
}
