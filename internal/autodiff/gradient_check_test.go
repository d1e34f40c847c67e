package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/vecgrad/internal/autodiff"
	"github.com/born-ml/vecgrad/internal/autodiff/ops"
	"github.com/born-ml/vecgrad/internal/tensor"
)

// buildFn builds a scalar expression over the given leaves and returns its output node.
type buildFn func(g *autodiff.Graph, leaves []autodiff.Node) autodiff.Node

// evaluate builds the expression in a fresh graph and returns its scalar output.
func evaluate(build buildFn, inputs []tensor.Value) float64 {
	g := autodiff.New()
	defer g.Teardown()
	leaves := make([]autodiff.Node, len(inputs))
	for i, in := range inputs {
		leaves[i] = g.CreateLeaf(in)
	}
	return build(g, leaves).Value()[0]
}

// checkGradients compares ComputeGradients with central finite differences.
func checkGradients(t *testing.T, build buildFn, inputs []tensor.Value) {
	t.Helper()
	const step, tolerance = 1e-6, 1e-6

	g := autodiff.New()
	leaves := make([]autodiff.Node, len(inputs))
	for i, in := range inputs {
		leaves[i] = g.CreateLeaf(in)
	}
	analytic := g.ComputeGradients(build(g, leaves), leaves...)

	for i := range inputs {
		for j := range inputs[i] {
			plus := cloneInputs(inputs)
			plus[i][j] += step
			minus := cloneInputs(inputs)
			minus[i][j] -= step
			numeric := (evaluate(build, plus) - evaluate(build, minus)) / (2 * step)
			require.InDelta(t, numeric, analytic[i][j], tolerance, "input #%d element #%d", i, j)
		}
	}
}

func cloneInputs(inputs []tensor.Value) []tensor.Value {
	out := make([]tensor.Value, len(inputs))
	for i, in := range inputs {
		out[i] = in.Clone()
	}
	return out
}

// TestGradientCheck_Demo differentiates 0.5·σ(Σ tanh(exp(x) ‖ y)).
func TestGradientCheck_Demo(t *testing.T) {
	build := func(g *autodiff.Graph, l []autodiff.Node) autodiff.Node {
		xExp := g.CreateNode(ops.NewExpOp(), l[0])
		out := g.CreateNode(ops.NewCatOp(), xExp, l[1])
		out = g.CreateNode(ops.NewReduceSumOp(), g.CreateNode(ops.NewTanhOp(), out))
		out = g.CreateNode(ops.NewSigmoidOp(), out)
		return g.CreateNode(ops.NewScaleOp(0.5), out)
	}
	checkGradients(t, build, []tensor.Value{
		{0.5, -0.1, 0.012, 0.00122, -0.92},
		{-0.1, -0.019, -0.0965, 0.0127},
	})
}

// TestGradientCheck_SharedSubexpressions exercises nested diamonds.
func TestGradientCheck_SharedSubexpressions(t *testing.T) {
	build := func(g *autodiff.Graph, l []autodiff.Node) autodiff.Node {
		x, w := l[0], l[1]
		h := g.CreateNode(ops.NewMulOp(), x, w)
		a := g.CreateNode(ops.NewReLUOp(), h)
		b := g.CreateNode(ops.NewPowOp(2), h)
		c := g.CreateNode(ops.NewSubOp(), a, b)
		sm := g.CreateNode(ops.NewSoftmaxOp(), g.CreateNode(ops.NewAddOp(), c, h, x))
		logp := g.CreateNode(ops.NewLogOp(), sm)
		return g.CreateNode(ops.NewDotOp(), logp, g.CreateNode(ops.NewExpOp(), w))
	}
	checkGradients(t, build, []tensor.Value{
		{0.4, -0.7, 1.3},
		{0.9, 0.2, -0.5},
	})
}

func TestGradientCheck_LogFloor(t *testing.T) {
	// The clamped entry is differentiated as log(eps): its gradient is g/eps.
	g := autodiff.New()
	x := g.CreateLeaf(tensor.Value{2, -1})
	y := g.CreateNode(ops.NewReduceSumOp(), g.CreateNode(ops.NewLogOpWithEpsilon(0.25), x))
	grads := g.ComputeGradients(y, x)
	require.InDelta(t, 0.5, grads[0][0], 1e-12)
	require.InDelta(t, 4.0, grads[0][1], 1e-12)
	require.InDelta(t, math.Log(2)+math.Log(0.25), y.Value()[0], 1e-12)
}
