package sweep

import (
	"testing"

	"github.com/stevegt/mlintro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples() []mlintro.Sample {
	return []mlintro.Sample{
		mlintro.NewSample(1, 0.1, 0.2),
		mlintro.NewSample(1, 0.3, 0.1),
		mlintro.NewSample(1, 0.2, 0.4),
		mlintro.NewSample(0, 0.9, 0.8),
		mlintro.NewSample(0, 0.7, 0.9),
		mlintro.NewSample(0, 1.0, 0.6),
	}
}

func TestSweepMatchesTrain(t *testing.T) {
	var params []mlintro.Params
	for _, rate := range []float64{0.01, 0.1, 1} {
		for seed := int64(1); seed <= 4; seed++ {
			params = append(params, mlintro.Params{Rate: rate, Epochs: 30, Seed: seed})
		}
	}
	data := samples()
	runs := Sweep(data, params, 4)
	require.Len(t, runs, len(params))

	ids := map[string]bool{}
	for i, run := range runs {
		require.NoError(t, run.Err)
		assert.Equal(t, params[i], run.Params)
		want, err := mlintro.Train(samples(), params[i])
		require.NoError(t, err)
		assert.Equal(t, want, run.Result, "run %d", i)
		ids[run.ID.String()] = true
	}
	assert.Len(t, ids, len(runs))
	// the caller's samples are not shared with the runs
	assert.Equal(t, samples(), data)
}

func TestSweepErrors(t *testing.T) {
	params := []mlintro.Params{
		{Rate: 0.1, Epochs: 5, Seed: 1},
		{Rate: -1, Epochs: 5, Seed: 1},
	}
	runs := Sweep(samples(), params, 0)
	require.Len(t, runs, 2)
	assert.NoError(t, runs[0].Err)
	assert.ErrorIs(t, runs[1].Err, mlintro.ErrInvalidConfig)
	assert.Nil(t, runs[1].Result)

	best := Best(runs)
	assert.Same(t, runs[0], best)
}

func TestSweepEmpty(t *testing.T) {
	runs := Sweep(samples(), nil, 3)
	assert.Empty(t, runs)
	assert.Nil(t, Best(runs))
}

func TestBest(t *testing.T) {
	mk := func(errors int, loss float64) *Run {
		return &Run{Result: &mlintro.Result{Stats: []mlintro.Stats{{Errors: 9, Loss: 9}, {Errors: errors, Loss: loss}}}}
	}
	runs := []*Run{mk(2, 0.1), mk(1, 0.5), mk(1, 0.3), mk(1, 0.3), {Result: &mlintro.Result{}}}
	assert.Same(t, runs[2], Best(runs))
}

// An overflowing update is a run error, not a crash of the worker.
func TestSweepNotFinite(t *testing.T) {
	data := []mlintro.Sample{mlintro.NewSample(0, 0, 1e308)}
	params := []mlintro.Params{
		{Rate: 10, Epochs: 3, Seed: 1},
		{Rate: 10, Epochs: 3, Seed: 2},
	}
	runs := Sweep(data, params, 2)
	require.Len(t, runs, 2)
	for _, run := range runs {
		assert.ErrorIs(t, run.Err, mlintro.ErrNotFinite)
		assert.Nil(t, run.Result)
	}
	assert.Nil(t, Best(runs))
}
