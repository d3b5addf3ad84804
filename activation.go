package mlintro

import "math"

// Step is the perceptron's threshold activation.  It returns 1 for
// t >= 0 and 0 otherwise; t == 0 classifies as 1.
func Step(t float64) int {
	if t >= 0 {
		return 1
	}
	return 0
}

// Sigmoid squashes a score into the open interval (0, 1) so it can be
// read as the probability of label 1.
func Sigmoid(t float64) float64 {
	return 1.0 / (1.0 + math.Exp(-t))
}
