// Package config parses s-expression descriptions of perceptron
// training runs, e.g.
//
//	(perceptron (rate 0.01 0.1) (epochs 25) (seed 42 7) (empty reject))
//
// The first symbol names the run.  Each (key value...) list sets one
// option; giving several values turns the option into a sweep
// dimension.
package config

import (
	"strconv"
	"strings"

	. "github.com/stevegt/goadapt"
	"github.com/stevegt/mlintro"
	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"
)

// Policies for an empty dataset.
const (
	EmptySkip   = "skip"
	EmptyReject = "reject"
)

// Spec is a parsed run description.  A nil option slice means the
// option was not given and takes its default.
type Spec struct {
	Name   string
	Rates  []float64
	Epochs []int
	Seeds  []int64
	Empty  string
}

func (s *Spec) String() (out string) {
	parts := []string{s.Name}
	if len(s.Rates) > 0 {
		vals := []string{}
		for _, r := range s.Rates {
			vals = append(vals, strconv.FormatFloat(r, 'g', -1, 64))
		}
		parts = append(parts, Spf("(rate %s)", strings.Join(vals, " ")))
	}
	if len(s.Epochs) > 0 {
		vals := []string{}
		for _, e := range s.Epochs {
			vals = append(vals, strconv.Itoa(e))
		}
		parts = append(parts, Spf("(epochs %s)", strings.Join(vals, " ")))
	}
	if len(s.Seeds) > 0 {
		vals := []string{}
		for _, seed := range s.Seeds {
			vals = append(vals, strconv.FormatInt(seed, 10))
		}
		parts = append(parts, Spf("(seed %s)", strings.Join(vals, " ")))
	}
	if s.Empty != "" {
		parts = append(parts, Spf("(empty %s)", s.Empty))
	}
	out = Spf("(%s)", strings.Join(parts, " "))
	return
}

// Params expands the spec into one mlintro.Params per combination of
// rate, epochs and seed, in that nesting order.  Options that were not
// given take their mlintro.DefaultParams values.
func (s *Spec) Params() (params []mlintro.Params) {
	def := mlintro.DefaultParams()
	rates := s.Rates
	if len(rates) == 0 {
		rates = []float64{def.Rate}
	}
	epochs := s.Epochs
	if len(epochs) == 0 {
		epochs = []int{def.Epochs}
	}
	seeds := s.Seeds
	if len(seeds) == 0 {
		seeds = []int64{def.Seed}
	}
	for _, rate := range rates {
		for _, epochCount := range epochs {
			for _, seed := range seeds {
				params = append(params, mlintro.Params{
					Rate:        rate,
					Epochs:      epochCount,
					Seed:        seed,
					RejectEmpty: s.Empty == EmptyReject,
				})
			}
		}
	}
	return
}

// SyntaxError is a syntax error.
type SyntaxError struct {
	msg  string
	node *ast.Node
}

func (e *SyntaxError) Error() string {
	return Spf("[config:%s] %s:\n%s", e.node.Token().Pos, e.msg, e.node.String())
}

// synck raises a syntax err if cond is false.
func synck(node *ast.Node, cond bool, args ...interface{}) {
	if !cond {
		msg := FormatArgs(args...)
		panic(&SyntaxError{msg, node})
	}
}

// catch turns a panicking *SyntaxError back into an error return.
func catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if synerr, ok := r.(*SyntaxError); ok {
		*err = synerr
		return
	}
	panic(r)
}

// Parse parses a run description.
func Parse(txt string) (s *Spec, err error) {
	defer Return(&err)
	defer catch(&err)
	root, err := parser.Parse([]byte(txt))
	Ck(err)

	// root is a list holding exactly one expression
	synck(root, root.Type() == ast.NodeTypeList, "root is not a list")
	children := root.List()
	synck(root, len(children) == 1, "root has %d children", len(children))
	expr := children[0]
	synck(expr, expr.Type() == ast.NodeTypeExpression, "root's child is not an expression")
	s = parseSpec(expr)
	return
}

func parseSpec(n *ast.Node) (s *Spec) {
	children := n.List()
	synck(n, len(children) > 0, "missing run name")
	synck(children[0], children[0].Type() == ast.NodeTypeSymbol, "run name is not a symbol")
	s = &Spec{Name: children[0].Encode()}
	seen := map[string]bool{}
	for _, child := range children[1:] {
		synck(child, child.Type() == ast.NodeTypeExpression, "option is not an expression")
		opts := child.List()
		synck(child, len(opts) > 1, "option needs a key and at least one value")
		synck(opts[0], opts[0].Type() == ast.NodeTypeSymbol, "option key is not a symbol")
		key := opts[0].Encode()
		synck(child, !seen[key], "duplicate option %s", key)
		seen[key] = true
		vals := opts[1:]
		for _, val := range vals {
			synck(val, isAtom(val), "option %s value is not an atom", key)
		}
		switch key {
		case "rate":
			for _, val := range vals {
				rate, err := strconv.ParseFloat(val.Encode(), 64)
				synck(val, err == nil, "rate %s is not a number", val.Encode())
				synck(val, rate > 0, "rate %s must be positive", val.Encode())
				s.Rates = append(s.Rates, rate)
			}
		case "epochs":
			for _, val := range vals {
				epochs, err := strconv.Atoi(val.Encode())
				synck(val, err == nil, "epochs %s is not an integer", val.Encode())
				synck(val, epochs >= 0, "epochs %s must not be negative", val.Encode())
				s.Epochs = append(s.Epochs, epochs)
			}
		case "seed":
			for _, val := range vals {
				seed, err := strconv.ParseInt(val.Encode(), 10, 64)
				synck(val, err == nil, "seed %s is not an integer", val.Encode())
				s.Seeds = append(s.Seeds, seed)
			}
		case "empty":
			synck(child, len(vals) == 1, "empty takes one value")
			policy := vals[0].Encode()
			synck(vals[0], policy == EmptySkip || policy == EmptyReject, "empty must be %s or %s", EmptySkip, EmptyReject)
			s.Empty = policy
		default:
			synck(opts[0], false, "unknown option %s", key)
		}
	}
	return
}

func isAtom(n *ast.Node) bool {
	switch n.Type() {
	case ast.NodeTypeSymbol, ast.NodeTypeInt, ast.NodeTypeFloat, ast.NodeTypeString:
		return true
	}
	return false
}
