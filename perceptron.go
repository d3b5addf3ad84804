// Package mlintro implements a single-layer perceptron for two-class,
// two-feature data.  Train runs the classic online perceptron rule and
// records the decision boundary line after every epoch.
package mlintro

import (
	"fmt"
	"math"

	. "github.com/stevegt/goadapt"
	"gonum.org/v1/gonum/floats"
)

// Sample is one labeled point: a feature vector and a binary label.
type Sample struct {
	X []float64
	Y int
}

// NewSample creates a new sample.
func NewSample(label int, features ...float64) (s Sample) {
	s = Sample{X: features, Y: label}
	return
}

// CloneSamples returns a deep copy of samples, so that the copy can be
// handed to an independent training run.
func CloneSamples(samples []Sample) (out []Sample) {
	out = make([]Sample, len(samples))
	for i, s := range samples {
		x := make([]float64, len(s.X))
		copy(x, s.X)
		out[i] = Sample{X: x, Y: s.Y}
	}
	return
}

// Model holds the weights and bias of a single-layer perceptron.
type Model struct {
	Weights []float64
	Bias    float64
}

// NewModel creates a model with the given bias and weights.
func NewModel(bias float64, weights ...float64) (m *Model) {
	w := make([]float64, len(weights))
	copy(w, weights)
	m = &Model{Weights: w, Bias: bias}
	return
}

// Clone returns a deep copy of the model.
func (m *Model) Clone() (clone *Model) {
	return NewModel(m.Bias, m.Weights...)
}

// Predict classifies x against weights w and bias b.  A NaN score,
// e.g. from an infinite input, is ErrNotFinite rather than a label.
func Predict(x, w []float64, b float64) (label int, err error) {
	s, err := score(x, w, b)
	if err != nil {
		return
	}
	label = Step(s)
	return
}

func score(x, w []float64, b float64) (float64, error) {
	if len(x) != len(w) {
		return 0, fmt.Errorf("%w: %d features, %d weights", ErrDimensionMismatch, len(x), len(w))
	}
	s := floats.Dot(x, w) + b
	if math.IsNaN(s) {
		return 0, fmt.Errorf("%w: score of %v is NaN", ErrNotFinite, x)
	}
	return s, nil
}

// Score returns the raw weighted sum x·W + b.
func (m *Model) Score(x []float64) (float64, error) {
	return score(x, m.Weights, m.Bias)
}

// Predict classifies x with the model's current weights and bias.
func (m *Model) Predict(x []float64) (label int, err error) {
	return Predict(x, m.Weights, m.Bias)
}

// Finite returns ErrNotFinite if any weight or the bias is NaN or
// infinite.
func (m *Model) Finite() error {
	for i, w := range m.Weights {
		if !finite(w) {
			return fmt.Errorf("%w: weight %d is %v", ErrNotFinite, i, w)
		}
	}
	if !finite(m.Bias) {
		return fmt.Errorf("%w: bias is %v", ErrNotFinite, m.Bias)
	}
	return nil
}

// Step runs one epoch of the perceptron rule over samples, in order,
// updating the model in place.  The update is online: each prediction
// uses the weights already adjusted by the samples before it.  It
// returns the number of updates applied.  An empty sample set is a
// no-op.
//
// Malformed samples and a non-finite model are rejected before any
// update.  If an update overflows a weight or the bias, or a score
// comes out NaN, Step stops with ErrNotFinite and the model is left
// part way through the epoch.
func (m *Model) Step(samples []Sample, rate float64) (updates int, err error) {
	err = m.Finite()
	if err != nil {
		return
	}
	for i, s := range samples {
		if len(s.X) != len(m.Weights) {
			return 0, fmt.Errorf("%w: sample %d has %d features, model has %d weights",
				ErrDimensionMismatch, i, len(s.X), len(m.Weights))
		}
		for j, x := range s.X {
			if !finite(x) {
				return 0, fmt.Errorf("%w: sample %d feature %d is %v", ErrNotFinite, i, j, x)
			}
		}
	}
	for i, s := range samples {
		var yhat int
		yhat, err = m.Predict(s.X)
		if err != nil {
			return updates, fmt.Errorf("sample %d: %w", i, err)
		}
		switch s.Y - yhat {
		case 1:
			// false negative: move the boundary toward the point
			floats.AddScaled(m.Weights, rate, s.X)
			m.Bias += rate
			updates++
		case -1:
			// false positive: move the boundary away from the point
			floats.AddScaled(m.Weights, -rate, s.X)
			m.Bias -= rate
			updates++
		}
		err = m.Finite()
		if err != nil {
			return updates, fmt.Errorf("sample %d: %w", i, err)
		}
	}
	return
}

// Line is the decision boundary x1 = Slope*x0 + Intercept of a
// two-feature model.
type Line struct {
	Slope     float64
	Intercept float64
}

// String formats the line the way the boundary list is printed.
func (l Line) String() string {
	return Spf("(%v, %v)", l.Slope, l.Intercept)
}

// Boundary derives the decision boundary line from a two-feature
// model.  A zero second weight means the boundary is vertical and
// cannot be written as a line in x0, so ErrDivisionByZero is returned
// rather than an infinite slope.  A model with a non-finite weight or
// bias has no boundary and gets ErrNotFinite.
func (m *Model) Boundary() (line Line, err error) {
	if len(m.Weights) != 2 {
		return line, fmt.Errorf("%w: boundary needs 2 weights, model has %d", ErrDimensionMismatch, len(m.Weights))
	}
	err = m.Finite()
	if err != nil {
		return
	}
	w0, w1 := m.Weights[0], m.Weights[1]
	if w1 == 0 {
		return line, fmt.Errorf("%w: second weight is zero, boundary is vertical", ErrDivisionByZero)
	}
	line = Line{Slope: -w0 / w1, Intercept: -m.Bias / w1}
	if !finite(line.Slope) || !finite(line.Intercept) {
		return Line{}, fmt.Errorf("%w: boundary %v is not finite, weights %v bias %v",
			ErrDivisionByZero, line, m.Weights, m.Bias)
	}
	return
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
