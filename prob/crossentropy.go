package prob

import (
	"fmt"
	"math"
)

// CrossEntropy returns the summed binary cross-entropy
//
//	-Σ y[i]·ln(p[i]) + (1-y[i])·ln(1-p[i])
//
// of labels y against predicted probabilities p.  Every p[i] must lie
// strictly between 0 and 1, since either end makes a term infinite;
// every y[i] must lie in [0, 1].
func CrossEntropy(y, p []float64) (sum float64, err error) {
	if len(y) != len(p) {
		return 0, fmt.Errorf("%w: %d labels, %d probabilities", ErrLengthMismatch, len(y), len(p))
	}
	if len(y) == 0 {
		return 0, ErrEmpty
	}
	for i := range y {
		if !(p[i] > 0 && p[i] < 1) {
			return 0, fmt.Errorf("%w: probability %d is %v", ErrOutOfRange, i, p[i])
		}
		if !(y[i] >= 0 && y[i] <= 1) {
			return 0, fmt.Errorf("%w: label %d is %v", ErrOutOfRange, i, y[i])
		}
		sum -= y[i]*math.Log(p[i]) + (1-y[i])*math.Log(1-p[i])
	}
	return
}

// MeanCrossEntropy is CrossEntropy divided by the number of samples.
func MeanCrossEntropy(y, p []float64) (mean float64, err error) {
	sum, err := CrossEntropy(y, p)
	if err != nil {
		return
	}
	mean = sum / float64(len(y))
	return
}
