package ops

import (
	"math"

	"github.com/born-ml/vecgrad/internal/tensor"
)

// TanhOp represents the hyperbolic tangent activation: y = tanh(x).
//
// Backward pass:
//   - d(tanh(x))/dx = 1 - tanh²(x) = 1 - y²
type TanhOp struct {
	forwardState
	output tensor.Value
}

// NewTanhOp creates a new tanh operation.
func NewTanhOp() *TanhOp {
	return &TanhOp{forwardState: newForwardState("tanh")}
}

// Forward computes tanh(x) and caches it.
func (op *TanhOp) Forward(inputs []tensor.Value) tensor.Value {
	checkArity(op.name, inputs, 1)
	op.output = tensor.Map(inputs[0], math.Tanh)
	op.record(inputs, len(op.output))
	return op.output.Clone()
}

// Backward computes grad_input = grad_output * (1 - output²).
func (op *TanhOp) Backward(outputGrad tensor.Value) []tensor.Value {
	op.checkBackward(outputGrad)
	grad := make(tensor.Value, len(outputGrad))
	for i, g := range outputGrad {
		y := op.output[i]
		grad[i] = g * (1 - y*y)
	}
	return []tensor.Value{grad}
}
