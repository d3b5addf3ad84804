// Command softmax converts scores into probabilities between 0 and 1
// that sum to 1, as used for multi-class classification.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	. "github.com/stevegt/goadapt"
	"github.com/stevegt/mlintro/prob"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: softmax [score...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	probs, err := run(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "softmax: %v\n", err)
		os.Exit(1)
	}
	Pl(probs)
}

// run returns the softmax of args, or of 4 down to -3 if there are no
// args.
func run(args []string) (probs []float64, err error) {
	defer Return(&err)
	scores := []float64{4, 3, 2, 1, 0, -1, -2, -3}
	if len(args) > 0 {
		scores = scores[:0]
		for _, arg := range args {
			score, err := strconv.ParseFloat(arg, 64)
			Ck(err)
			scores = append(scores, score)
		}
	}
	probs, err = prob.Softmax(scores)
	Ck(err)
	return
}
