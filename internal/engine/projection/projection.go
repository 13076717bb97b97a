// Package projection maps combined point scores into ratio space.
package projection

import (
	"math"
	"strconv"

	"github.com/hejijunhao/lovetype/internal/model"
)

// minTotal keeps the ratio denominator positive when every score is zero.
const minTotal = 1e-9

// Project computes the four ratios for a combined score set. dyn, sta and
// bond share the denominator T (the sum of the four non-trust scores);
// trust is scaled by trustDivisor alone. Ratios are rounded to four decimal
// places and the rounded values are what distance matching sees. Nothing is
// clamped, so trust may exceed 1.
func Project(total model.Scores, trustDivisor float64) model.Point {
	t := Total(total)
	return model.Point{
		Dyn:   Round(float64(total.Stimulation)/t, 4),
		Sta:   Round(float64(total.Empathy+total.Harmony)/t, 4),
		Bond:  Round(float64(total.Dependency)/t, 4),
		Trust: Round(float64(total.Trust)/trustDivisor, 4),
	}
}

// Total returns the shared ratio denominator T.
func Total(s model.Scores) float64 {
	return math.Max(minTotal, float64(s.Empathy+s.Harmony+s.Dependency+s.Stimulation))
}

// Round rounds f to the given number of decimal places, correctly rounded
// from its exact binary value with ties to even.
func Round(f float64, places int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', places, 64), 64)
	if err != nil {
		return f
	}
	return r
}
