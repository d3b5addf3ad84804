package mlintro

import (
	"encoding/json"
	"math"

	"github.com/emicklei/dot"
	. "github.com/stevegt/goadapt"
)

// Save serializes the model's weights and bias to a JSON string.
func (m *Model) Save() (out string) {
	buf, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		// json refuses NaN and Inf
		Assert(false, "error marshaling model: weights %v bias %v: %v", m.Weights, m.Bias, err)
	}
	out = string(buf)
	return
}

// Load deserializes a model from a JSON string.
func Load(txt string) (m *Model, err error) {
	defer Return(&err)
	m = &Model{}
	err = json.Unmarshal([]byte(txt), m)
	Ck(err)
	Assert(len(m.Weights) > 0, "model has no weights")
	for i, w := range m.Weights {
		Assert(finite(w), "weight %d is %v", i, w)
	}
	Assert(finite(m.Bias), "bias is %v", m.Bias)
	return
}

// Draw returns a graphviz representation of the model: one node per
// input plus the bias, each connected to the step output by an edge
// labeled with its weight.
func (m *Model) Draw() string {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")
	out := g.Node("step").Label("step(x·w + b)")
	out.Attr("shape", "doublecircle")
	for i, w := range m.Weights {
		in := g.Node(Spf("x%d", i))
		in.Attr("shape", "circle")
		g.Edge(in, out, weightLabel(w))
	}
	bias := g.Node("bias").Label("1")
	bias.Attr("shape", "box")
	g.Edge(bias, out, weightLabel(m.Bias))
	return g.String()
}

func weightLabel(w float64) string {
	// keep the drawing readable
	return Spf("%.4g", math.Round(w*1e4)/1e4)
}
