// Package dataset loads labeled two-class data from comma-separated
// files: one row per sample, features first, label last.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/stevegt/mlintro"
	"gonum.org/v1/gonum/mat"
)

// ReadCSV reads rows of numbers into a dense matrix.  Every row must
// have the same number of columns.
func ReadCSV(r io.Reader) (data *mat.Dense, err error) {
	rd := csv.NewReader(r)
	rd.TrimLeadingSpace = true
	rd.Comment = '#'
	rows, err := rd.ReadAll()
	if err != nil {
		return
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows")
	}
	cols := len(rows[0])
	vals := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		for j, field := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", i+1, j+1, err)
			}
			vals = append(vals, v)
		}
	}
	data = mat.NewDense(len(rows), cols, vals)
	return
}

// Samples splits a matrix into samples: all but the last column are
// features, the last column is the label, which must be 0 or 1.
func Samples(data mat.Matrix) (samples []mlintro.Sample, err error) {
	rows, cols := data.Dims()
	if cols < 2 {
		return nil, fmt.Errorf("need at least one feature and a label, have %d columns", cols)
	}
	samples = make([]mlintro.Sample, rows)
	for i := 0; i < rows; i++ {
		row := mat.Row(nil, i, data)
		label := row[cols-1]
		if label != 0 && label != 1 {
			return nil, fmt.Errorf("row %d: %w: %v", i+1, mlintro.ErrInvalidLabel, label)
		}
		samples[i] = mlintro.NewSample(int(label), row[:cols-1]...)
	}
	return
}

// Load reads samples from a CSV file.
func Load(path string) (samples []mlintro.Sample, err error) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	data, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Samples(data)
}
