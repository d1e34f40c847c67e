package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/vecgrad/autodiff"
	"github.com/born-ml/vecgrad/tensor"
)

// scenario is a demo graph over two leaves x and y with a scalar output.
type scenario struct {
	x, y  tensor.Value
	build func(g *autodiff.Graph, x, y autodiff.Node) autodiff.Node
}

var scenarios = map[string]scenario{
	"concat": {
		x: tensor.Value{0.5, -0.1, 0.012, 0.00122, -0.92},
		y: tensor.Value{-0.1, -0.019, -0.0965, 0.0127},
		build: func(g *autodiff.Graph, x, y autodiff.Node) autodiff.Node {
			xExp := g.CreateNode(autodiff.Exp(), x)
			out := g.CreateNode(autodiff.Concat(), xExp, y)
			out = g.CreateNode(autodiff.ReduceSum(), g.CreateNode(autodiff.Tanh(), out))
			out = g.CreateNode(autodiff.Sigmoid(), out)
			return g.CreateNode(autodiff.Scale(0.5), out)
		},
	},
	// out = exp(x + y): x and y must have a single element each.
	"add-exp": {
		x: tensor.Value{0.5},
		y: tensor.Value{-0.1},
		build: func(g *autodiff.Graph, x, y autodiff.Node) autodiff.Node {
			return g.CreateNode(autodiff.Exp(), g.CreateNode(autodiff.Add(), x, y))
		},
	},
}

func lookupScenario(name string) (scenario, error) {
	s, found := scenarios[name]
	if !found {
		return scenario{}, errors.Errorf("unknown scenario %q, valid values are \"concat\" and \"add-exp\"", name)
	}
	return s, nil
}

// gradients builds the scenario over x and y and returns [∂out/∂x, ∂out/∂y].
func (s scenario) gradients(x, y tensor.Value) []tensor.Value {
	g := autodiff.New(autodiff.WithName("demo"))
	defer g.Teardown()
	xNode, yNode := g.CreateLeaf(x), g.CreateLeaf(y)
	out := s.build(g, xNode, yNode)
	klog.V(1).Infof("demo output: %s", out.Value())
	return g.ComputeGradients(out, xNode, yNode)
}

// parseValues parses a comma-separated list of numbers, e.g. "0.5,-0.1".
func parseValues(s string) (tensor.Value, error) {
	fields := strings.Split(s, ",")
	v := make(tensor.Value, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q in %q", f, s)
		}
		v = append(v, x)
	}
	return v, nil
}
