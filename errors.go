package mlintro

import "errors"

var (
	// ErrDimensionMismatch is returned when a feature vector's length
	// disagrees with the weight vector or with the two features
	// needed to draw a boundary line.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrEmptyDataset is returned by Train when Params.RejectEmpty is
	// set and there are no samples.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrDivisionByZero is returned when the boundary line is vertical
	// (second weight is zero) or otherwise not finite.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidConfig is returned for a non-positive learning rate or
	// a negative epoch count.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidLabel is returned for a label other than 0 or 1.
	ErrInvalidLabel = errors.New("invalid label")
	// ErrNotFinite is returned when a feature, score, weight or bias is
	// NaN or infinite, e.g. after an update overflows.
	ErrNotFinite = errors.New("not finite")
)
