package prob

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Softmax converts a vector of scores into probabilities that sum to
// 1.  The largest score is subtracted before exponentiating so that
// large scores do not overflow.
//
// Outputs are in (0, 1) only up to float64 precision: a single score
// gives exactly 1, and a score more than about 745 below the largest
// underflows to 0.
func Softmax(x []float64) (out []float64, err error) {
	if len(x) == 0 {
		return nil, ErrEmpty
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: score %d is %v", ErrNotFinite, i, v)
		}
	}
	max := floats.Max(x)
	out = make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Exp(v - max)
	}
	// the max term is exp(0) == 1, so total >= 1
	total := floats.Sum(out)
	floats.Scale(1/total, out)
	return
}
