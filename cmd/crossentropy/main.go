// Command crossentropy prints the cross-entropy of a set of labels
// against predicted probabilities.  Lower is better.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	. "github.com/stevegt/goadapt"
	"github.com/stevegt/mlintro/prob"
)

func main() {
	labels := flag.String("y", "1,1,0", "comma-separated labels")
	probs := flag.String("p", "0.8,0.7,0.1", "comma-separated probabilities of label 1")
	flag.Parse()

	err := run(*labels, *probs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crossentropy: %v\n", err)
		os.Exit(1)
	}
}

func run(labels, probs string) (err error) {
	defer Return(&err)
	y, err := parseList(labels)
	Ck(err)
	p, err := parseList(probs)
	Ck(err)
	ce, err := prob.CrossEntropy(y, p)
	Ck(err)
	Pf("Cross Entropy is: %v\n", ce)
	return
}

func parseList(txt string) (vals []float64, err error) {
	for _, field := range strings.Split(txt, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return
}
