// Command perceptron trains a perceptron on a CSV file of two-feature
// labeled points and prints the boundary line after each epoch.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	. "github.com/stevegt/goadapt"
	"github.com/stevegt/mlintro"
	"github.com/stevegt/mlintro/config"
	"github.com/stevegt/mlintro/dataset"
	"github.com/stevegt/mlintro/sweep"
	"github.com/stevegt/mlintro/trace"
)

func main() {
	dataPath := flag.String("data", "testdata/data.csv", "CSV file of x0,x1,label rows")
	configPath := flag.String("config", "", "s-expression run description, e.g. (perceptron (rate 0.01) (epochs 25))")
	workers := flag.Int("workers", 4, "parallel training runs when the config describes a sweep")
	draw := flag.Bool("dot", false, "print a graphviz drawing of the final model")
	tracePath := flag.String("trace", "", "write a binary trace of the best run to this file")
	flag.Parse()

	err := run(*dataPath, *configPath, *workers, *draw, *tracePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "perceptron: %v\n", err)
		os.Exit(1)
	}
}

func run(dataPath, configPath string, workers int, draw bool, tracePath string) (err error) {
	defer Return(&err)

	samples, err := dataset.Load(dataPath)
	Ck(err)

	spec := &config.Spec{Name: "perceptron"}
	if configPath != "" {
		buf, err := os.ReadFile(configPath)
		Ck(err)
		spec, err = config.Parse(string(buf))
		Ck(err)
	}
	params := spec.Params()

	runs := sweep.Sweep(samples, params, workers)
	for _, r := range runs {
		if len(runs) > 1 {
			Pf("%s rate %v epochs %d seed %d\n", spec.Name, r.Params.Rate, r.Params.Epochs, r.Params.Seed)
		}
		if r.Err != nil {
			Pf("error: %v\n", r.Err)
			continue
		}
		Pl(formatLines(r.Result.Lines))
	}

	best := sweep.Best(runs)
	if best == nil {
		// every run failed or had no epochs
		for _, r := range runs {
			Ck(r.Err)
		}
		return
	}
	if len(runs) > 1 {
		last := best.Result.Stats[len(best.Result.Stats)-1]
		Pf("best: rate %v epochs %d seed %d errors %d loss %.4f\n",
			best.Params.Rate, best.Params.Epochs, best.Params.Seed, last.Errors, last.Loss)
	}
	if draw {
		Pl(best.Result.Final.Draw())
	}
	if tracePath != "" {
		tr := trace.FromResult(spec.Name, best.Result)
		err = os.WriteFile(tracePath, tr.AsBytes(), 0644)
		Ck(err)
		vec, epochs := tr.Updates()
		Pf("wrote trace of %d epochs to %s (update counts pack into %d bytes)\n", epochs, tracePath, vec.Size())
	}
	return
}

// formatLines prints boundary lines as a list of (slope, intercept)
// pairs.
func formatLines(lines []mlintro.Line) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = line.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
