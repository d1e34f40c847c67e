package ops

import (
	"github.com/pkg/errors"

	"github.com/born-ml/vecgrad/internal/tensor"
)

// CatOp represents the concatenation of its inputs: output = x1 ‖ x2 ‖ ... ‖ xk.
//
// Backward:
//
//	Split gradOutput at the input boundaries and distribute to each input.
//	Each input receives the gradient slice corresponding to its contribution.
//
// Example:
//
//	inputs: [1,2], [3,4,5]
//	output: [1,2,3,4,5]
//	gradOutput: [dL/d1, dL/d2, dL/d3, dL/d4, dL/d5]
//	gradInput1: [dL/d1, dL/d2]
//	gradInput2: [dL/d3, dL/d4, dL/d5]
type CatOp struct {
	forwardState
}

// NewCatOp creates a new concatenation operation.
func NewCatOp() *CatOp {
	return &CatOp{forwardState: newForwardState("concat")}
}

// Forward concatenates the inputs in order.
func (op *CatOp) Forward(inputs []tensor.Value) tensor.Value {
	checkMinArity(op.name, inputs, 1)
	var total int
	for _, in := range inputs {
		total += len(in)
	}
	output := make(tensor.Value, 0, total)
	for _, in := range inputs {
		output = append(output, in...)
	}
	op.record(inputs, len(output))
	return output
}

// Backward partitions the output gradient into one slice per input.
func (op *CatOp) Backward(gradOutput tensor.Value) []tensor.Value {
	op.checkBackward(gradOutput)
	grads := make([]tensor.Value, len(op.inputLens))
	offset := 0
	for i, n := range op.inputLens {
		grads[i] = tensor.FromSlice(gradOutput[offset : offset+n])
		offset += n
	}
	if offset != len(gradOutput) {
		panic(errors.Wrapf(tensor.ErrShapeMismatch, "%s: input lengths add up to %d, output gradient has %d",
			op.name, offset, len(gradOutput)))
	}
	return grads
}
