package ops

import "github.com/born-ml/vecgrad/internal/tensor"

// ScaleOp multiplies its single input by a constant: output = c·x.
//
// Backward pass:
//   - grad_x = c·outputGrad
type ScaleOp struct {
	forwardState
	factor float64
}

// NewScaleOp creates a new ScaleOp multiplying by factor.
func NewScaleOp(factor float64) *ScaleOp {
	return &ScaleOp{forwardState: newForwardState("scale"), factor: factor}
}

// Factor returns the constant the input is multiplied by.
func (op *ScaleOp) Factor() float64 {
	return op.factor
}

// Forward computes c·x.
func (op *ScaleOp) Forward(inputs []tensor.Value) tensor.Value {
	checkArity(op.name, inputs, 1)
	output := tensor.Scale(inputs[0], op.factor)
	op.record(inputs, len(output))
	return output
}

// Backward computes the input gradient c·outputGrad.
func (op *ScaleOp) Backward(outputGrad tensor.Value) []tensor.Value {
	op.checkBackward(outputGrad)
	return []tensor.Value{tensor.Scale(outputGrad, op.factor)}
}
