package ops

import (
	"math"

	"github.com/born-ml/vecgrad/internal/tensor"
)

// PowOp raises each element to a constant power: output = x^p.
//
// Backward pass:
//   - d(x^p)/dx = p·x^(p-1)
//   - grad_input = grad_output ⊙ p·x^(p-1)
type PowOp struct {
	forwardState
	power float64
	input tensor.Value
}

// NewPowOp creates a new PowOp with the given exponent.
func NewPowOp(power float64) *PowOp {
	return &PowOp{forwardState: newForwardState("pow"), power: power}
}

// Power returns the exponent.
func (op *PowOp) Power() float64 {
	return op.power
}

// Forward computes x^p and caches x.
func (op *PowOp) Forward(inputs []tensor.Value) tensor.Value {
	checkArity(op.name, inputs, 1)
	op.input = inputs[0].Clone()
	output := tensor.Map(op.input, func(x float64) float64 { return math.Pow(x, op.power) })
	op.record(inputs, len(output))
	return output
}

// Backward computes the gradient with respect to the input.
func (op *PowOp) Backward(outputGrad tensor.Value) []tensor.Value {
	op.checkBackward(outputGrad)
	grad := make(tensor.Value, len(outputGrad))
	for i, g := range outputGrad {
		if op.power == 0 {
			continue
		}
		grad[i] = g * op.power * math.Pow(op.input[i], op.power-1)
	}
	return []tensor.Value{grad}
}
