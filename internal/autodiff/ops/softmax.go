package ops

import (
	"math"

	"github.com/born-ml/vecgrad/internal/tensor"
)

// SoftmaxOp represents softmax over the whole input vector:
//
//	y_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x))
//
// Subtracting max(x) keeps exp from overflowing and doesn't change the result.
//
// Backward pass:
//
//	∂L/∂x_i = y_i * (∂L/∂y_i - Σ_j ∂L/∂y_j * y_j)
type SoftmaxOp struct {
	forwardState
	output tensor.Value
}

// NewSoftmaxOp creates a new softmax operation.
func NewSoftmaxOp() *SoftmaxOp {
	return &SoftmaxOp{forwardState: newForwardState("softmax")}
}

// Forward computes the softmax and caches it.
func (op *SoftmaxOp) Forward(inputs []tensor.Value) tensor.Value {
	checkArity(op.name, inputs, 1)
	in := inputs[0]
	if len(in) == 0 {
		op.output = tensor.Value{}
		op.record(inputs, 0)
		return tensor.Value{}
	}
	maxVal := in[0]
	for _, x := range in[1:] {
		maxVal = math.Max(maxVal, x)
	}
	op.output = tensor.Map(in, func(x float64) float64 { return math.Exp(x - maxVal) })
	sum := tensor.Sum(op.output)
	for i := range op.output {
		op.output[i] /= sum
	}
	op.record(inputs, len(op.output))
	return op.output.Clone()
}

// Backward computes the gradient of softmax.
func (op *SoftmaxOp) Backward(outputGrad tensor.Value) []tensor.Value {
	op.checkBackward(outputGrad)
	dot := tensor.Dot(outputGrad, op.output)
	grad := make(tensor.Value, len(outputGrad))
	for i, g := range outputGrad {
		grad[i] = op.output[i] * (g - dot)
	}
	return []tensor.Value{grad}
}
