package ops

import "github.com/born-ml/vecgrad/internal/tensor"

// SubOp represents element-wise subtraction: output = a - b.
//
// Backward pass:
//   - grad_a = outputGrad
//   - grad_b = -outputGrad
type SubOp struct {
	forwardState
}

// NewSubOp creates a new SubOp.
func NewSubOp() *SubOp {
	return &SubOp{forwardState: newForwardState("sub")}
}

// Forward computes a - b.
func (op *SubOp) Forward(inputs []tensor.Value) tensor.Value {
	checkArity(op.name, inputs, 2)
	tensor.AssertSameLen(op.name, inputs...)
	output := tensor.Add(inputs[0], tensor.Scale(inputs[1], -1))
	op.record(inputs, len(output))
	return output
}

// Backward computes input gradients for subtraction.
func (op *SubOp) Backward(outputGrad tensor.Value) []tensor.Value {
	op.checkBackward(outputGrad)
	return []tensor.Value{outputGrad.Clone(), tensor.Scale(outputGrad, -1)}
}
