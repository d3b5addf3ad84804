package mlintro_test

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	. "github.com/stevegt/goadapt"
	"github.com/stevegt/mlintro"
	"github.com/stevegt/mlintro/dataset"
)

func loadData(t *testing.T) []mlintro.Sample {
	samples, err := dataset.Load("testdata/data.csv")
	Tassert(t, err == nil, err)
	Tassert(t, len(samples) > 0)
	return samples
}

func TestTrainDeterministic(t *testing.T) {
	samples := loadData(t)
	p := mlintro.DefaultParams()
	res1, err := mlintro.Train(samples, p)
	Tassert(t, err == nil, err)
	res2, err := mlintro.Train(samples, p)
	Tassert(t, err == nil, err)
	Tassert(t, len(res1.Lines) == p.Epochs, res1.Lines)
	for i := range res1.Lines {
		Tassert(t, math.Float64bits(res1.Lines[i].Slope) == math.Float64bits(res2.Lines[i].Slope), i)
		Tassert(t, math.Float64bits(res1.Lines[i].Intercept) == math.Float64bits(res2.Lines[i].Intercept), i)
	}

	// a Source overrides the seed
	p.Source = rand.NewSource(p.Seed)
	res3, err := mlintro.Train(samples, p)
	Tassert(t, err == nil, err)
	Tassert(t, reflect.DeepEqual(res1.Lines, res3.Lines))

	p.Source = nil
	p.Seed = 7
	res4, err := mlintro.Train(samples, p)
	Tassert(t, err == nil, err)
	Tassert(t, !reflect.DeepEqual(res1.Lines, res4.Lines))
}

// Train on a linearly separable dataset until every point is
// classified.
func TestTrainSeparable(t *testing.T) {
	samples := loadData(t)
	p := mlintro.Params{Rate: 0.01, Epochs: 3000, Seed: 42}
	res, err := mlintro.Train(samples, p)
	Tassert(t, err == nil, err)
	last := res.Stats[len(res.Stats)-1]
	Tassert(t, last.Errors == 0, last)
	Tassert(t, last.Updates == 0, last)
	for _, s := range samples {
		label, err := res.Final.Predict(s.X)
		Tassert(t, err == nil, err)
		Tassert(t, label == s.Y, s)
	}
}
