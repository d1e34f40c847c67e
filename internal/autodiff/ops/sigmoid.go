package ops

import (
	"math"

	"github.com/born-ml/vecgrad/internal/tensor"
)

// SigmoidOp represents the sigmoid activation operation: σ(x) = 1 / (1 + exp(-x)).
type SigmoidOp struct {
	forwardState
	output tensor.Value
}

// NewSigmoidOp creates a new sigmoid operation.
func NewSigmoidOp() *SigmoidOp {
	return &SigmoidOp{forwardState: newForwardState("sigmoid")}
}

// Forward computes σ(x) and caches it.
func (op *SigmoidOp) Forward(inputs []tensor.Value) tensor.Value {
	checkArity(op.name, inputs, 1)
	op.output = tensor.Map(inputs[0], sigmoid)
	op.record(inputs, len(op.output))
	return op.output.Clone()
}

// Backward computes the gradient for sigmoid.
//
// For σ(x) = 1 / (1 + exp(-x)):
// dσ/dx = σ(x) * (1 - σ(x))
//
// Since we have the output σ(x) already computed, we can use it:
// grad_input = grad_output * output * (1 - output).
func (op *SigmoidOp) Backward(outputGrad tensor.Value) []tensor.Value {
	op.checkBackward(outputGrad)
	grad := make(tensor.Value, len(outputGrad))
	for i, g := range outputGrad {
		y := op.output[i]
		grad[i] = g * y * (1 - y)
	}
	return []tensor.Value{grad}
}

// sigmoid is split by sign so exp never overflows.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}
