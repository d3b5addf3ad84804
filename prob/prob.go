// Package prob implements the probability primitives used alongside
// the perceptron: binary cross-entropy and softmax.
package prob

import "errors"

var (
	ErrEmpty          = errors.New("empty input")
	ErrLengthMismatch = errors.New("length mismatch")
	ErrOutOfRange     = errors.New("value out of range")
	ErrNotFinite      = errors.New("value not finite")
)
