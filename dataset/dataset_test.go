package dataset

import (
	"strings"
	"testing"

	"github.com/stevegt/mlintro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	data, err := ReadCSV(strings.NewReader("# x0,x1,y\n0.5, 0.25,1\n-1,2,0\n"))
	require.NoError(t, err)
	r, c := data.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 0.25, data.At(0, 1))
	assert.Equal(t, -1.0, data.At(1, 0))
}

func TestReadCSVErrors(t *testing.T) {
	for _, txt := range []string{
		"",
		"1,2,0\n1,2\n",
		"1,x,0\n",
	} {
		_, err := ReadCSV(strings.NewReader(txt))
		assert.Error(t, err, "%q", txt)
	}
}

func TestSamples(t *testing.T) {
	data, err := ReadCSV(strings.NewReader("0.5,0.25,1\n-1,2,0\n"))
	require.NoError(t, err)
	samples, err := Samples(data)
	require.NoError(t, err)
	assert.Equal(t, []mlintro.Sample{
		mlintro.NewSample(1, 0.5, 0.25),
		mlintro.NewSample(0, -1, 2),
	}, samples)
}

func TestSamplesErrors(t *testing.T) {
	data, err := ReadCSV(strings.NewReader("0.5,0.25,2\n"))
	require.NoError(t, err)
	_, err = Samples(data)
	assert.ErrorIs(t, err, mlintro.ErrInvalidLabel)

	data, err = ReadCSV(strings.NewReader("1\n0\n"))
	require.NoError(t, err)
	_, err = Samples(data)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	samples, err := Load("../testdata/data.csv")
	require.NoError(t, err)
	require.NotEmpty(t, samples)
	for _, s := range samples {
		assert.Len(t, s.X, 2)
	}
	res, err := mlintro.Train(samples, mlintro.DefaultParams())
	require.NoError(t, err)
	assert.Len(t, res.Lines, 25)

	_, err = Load("../testdata/missing.csv")
	assert.Error(t, err)
}
