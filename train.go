package mlintro

import (
	"fmt"
	"math"
	"math/rand"

	. "github.com/stevegt/goadapt"
	"github.com/stevegt/mlintro/prob"
	"gonum.org/v1/gonum/floats"
)

// Params contains the parameters for a training run.
type Params struct {
	Rate   float64 // learning rate, must be > 0
	Epochs int     // number of passes over the dataset, must be >= 0
	Seed   int64   // seeds the initial weights when Source is nil
	// Source, if set, supplies the initial weights instead of Seed.
	Source rand.Source
	// RejectEmpty makes an empty dataset an error instead of a no-op.
	RejectEmpty bool
}

// DefaultParams returns a learning rate of 0.01, 25 epochs and seed
// 42.
func DefaultParams() Params {
	return Params{
		Rate:   0.01,
		Epochs: 25,
		Seed:   42,
	}
}

// Validate checks the rate and epoch count.
func (p Params) Validate() error {
	if !(p.Rate > 0) || math.IsInf(p.Rate, 0) {
		return fmt.Errorf("%w: learning rate %v must be positive", ErrInvalidConfig, p.Rate)
	}
	if p.Epochs < 0 {
		return fmt.Errorf("%w: epoch count %d must not be negative", ErrInvalidConfig, p.Epochs)
	}
	return nil
}

// rng returns the random source for this run.  Each call with a nil
// Source builds a fresh generator, so runs never share state.
func (p Params) rng() *rand.Rand {
	if p.Source != nil {
		return rand.New(p.Source)
	}
	return rand.New(rand.NewSource(p.Seed))
}

// Stats summarizes one epoch.
type Stats struct {
	Epoch   int
	Updates int     // weight updates applied during the epoch
	Errors  int     // samples misclassified after the epoch
	Loss    float64 // mean cross-entropy of Sigmoid(score)
}

// Result is the outcome of a training run.  Lines holds one boundary
// per epoch, in epoch order.
type Result struct {
	Lines   []Line
	Stats   []Stats
	Initial *Model
	Final   *Model
}

// Train initializes a two-feature model and runs the perceptron
// algorithm on samples for p.Epochs epochs, recording the boundary
// line after each epoch.
//
// Weights start as uniform draws in [0, 1).  The bias starts as a
// uniform draw plus the largest first feature in the dataset, which
// puts the initial boundary near the right edge of the data.
func Train(samples []Sample, p Params) (res *Result, err error) {
	err = check(samples, p)
	if err != nil {
		return
	}
	rng := p.rng()
	m := &Model{Weights: []float64{rng.Float64(), rng.Float64()}}
	m.Bias = rng.Float64() + maxFirstFeature(samples)
	Debug("init weights %v bias %v\n", m.Weights, m.Bias)
	return train(m, samples, p)
}

// TrainFrom is like Train, but starts from a copy of the given model
// instead of a random one.  Seed and Source are ignored.
func TrainFrom(m *Model, samples []Sample, p Params) (res *Result, err error) {
	err = check(samples, p)
	if err != nil {
		return
	}
	if len(m.Weights) != 2 {
		return nil, fmt.Errorf("%w: model has %d weights, need 2", ErrDimensionMismatch, len(m.Weights))
	}
	err = m.Finite()
	if err != nil {
		return
	}
	return train(m.Clone(), samples, p)
}

func check(samples []Sample, p Params) (err error) {
	err = p.Validate()
	if err != nil {
		return
	}
	if len(samples) == 0 && p.RejectEmpty {
		return ErrEmptyDataset
	}
	for i, s := range samples {
		if len(s.X) != 2 {
			return fmt.Errorf("%w: sample %d has %d features, need 2", ErrDimensionMismatch, i, len(s.X))
		}
		if s.Y != 0 && s.Y != 1 {
			return fmt.Errorf("%w: sample %d has label %d", ErrInvalidLabel, i, s.Y)
		}
		for j, x := range s.X {
			if !finite(x) {
				return fmt.Errorf("%w: sample %d feature %d is %v", ErrNotFinite, i, j, x)
			}
		}
	}
	return
}

func maxFirstFeature(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	col := make([]float64, len(samples))
	for i, s := range samples {
		col[i] = s.X[0]
	}
	return floats.Max(col)
}

func train(m *Model, samples []Sample, p Params) (res *Result, err error) {
	res = &Result{
		Lines:   make([]Line, 0, p.Epochs),
		Stats:   make([]Stats, 0, p.Epochs),
		Initial: m.Clone(),
	}
	for epoch := 0; epoch < p.Epochs; epoch++ {
		updates, err := m.Step(samples, p.Rate)
		if err != nil {
			return nil, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		line, err := m.Boundary()
		if err != nil {
			return nil, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		res.Lines = append(res.Lines, line)
		stats, err := m.stats(samples)
		if err != nil {
			return nil, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		stats.Epoch = epoch
		stats.Updates = updates
		res.Stats = append(res.Stats, stats)
		Debug("epoch %d updates %d errors %d loss %.4f line %v\n", epoch, updates, stats.Errors, stats.Loss, line)
	}
	res.Final = m.Clone()
	return
}

// probability clamp so that the loss of a saturated sigmoid stays
// finite
const eps = 1e-15

func (m *Model) stats(samples []Sample) (s Stats, err error) {
	if len(samples) == 0 {
		return
	}
	y := make([]float64, len(samples))
	p := make([]float64, len(samples))
	for i, sample := range samples {
		var score float64
		score, err = m.Score(sample.X)
		if err != nil {
			return s, fmt.Errorf("sample %d: %w", i, err)
		}
		if Step(score) != sample.Y {
			s.Errors++
		}
		y[i] = float64(sample.Y)
		p[i] = math.Min(math.Max(Sigmoid(score), eps), 1-eps)
	}
	loss, err := prob.MeanCrossEntropy(y, p)
	if err != nil {
		return s, fmt.Errorf("%w: loss: %v", ErrNotFinite, err)
	}
	s.Loss = loss
	return
}
