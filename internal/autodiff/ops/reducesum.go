package ops

import "github.com/born-ml/vecgrad/internal/tensor"

// ReduceSumOp sums all elements of its input into a single-element output.
//
// Backward pass:
//   - d(Σx)/dxi = 1, so grad_input = [g0, g0, ..., g0] with the input's length
type ReduceSumOp struct {
	forwardState
}

// NewReduceSumOp creates a new ReduceSumOp.
func NewReduceSumOp() *ReduceSumOp {
	return &ReduceSumOp{forwardState: newForwardState("reduce_sum")}
}

// Forward returns [Σ x].
func (op *ReduceSumOp) Forward(inputs []tensor.Value) tensor.Value {
	checkArity(op.name, inputs, 1)
	op.record(inputs, 1)
	return tensor.Value{tensor.Sum(inputs[0])}
}

// Backward broadcasts the single output gradient to every input element.
func (op *ReduceSumOp) Backward(outputGrad tensor.Value) []tensor.Value {
	op.checkBackward(outputGrad)
	return []tensor.Value{tensor.Full(op.inputLens[0], outputGrad[0])}
}
