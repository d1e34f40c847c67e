package ops

import "github.com/born-ml/vecgrad/internal/tensor"

// DotOp represents the inner product of two vectors: output = [Σ ai·bi].
//
// Backward pass:
//   - grad_a = g0·b
//   - grad_b = g0·a
type DotOp struct {
	forwardState
	a, b tensor.Value
}

// NewDotOp creates a new DotOp.
func NewDotOp() *DotOp {
	return &DotOp{forwardState: newForwardState("dot")}
}

// Forward computes the inner product and caches both inputs.
func (op *DotOp) Forward(inputs []tensor.Value) tensor.Value {
	checkArity(op.name, inputs, 2)
	tensor.AssertSameLen(op.name, inputs...)
	op.a = inputs[0].Clone()
	op.b = inputs[1].Clone()
	op.record(inputs, 1)
	return tensor.Value{tensor.Dot(op.a, op.b)}
}

// Backward computes input gradients for the inner product.
func (op *DotOp) Backward(outputGrad tensor.Value) []tensor.Value {
	op.checkBackward(outputGrad)
	g := outputGrad[0]
	return []tensor.Value{tensor.Scale(op.b, g), tensor.Scale(op.a, g)}
}
