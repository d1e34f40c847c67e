package ops

import "github.com/born-ml/vecgrad/internal/tensor"

// AddOp represents an element-wise sum of one or more inputs: output = x1 + ... + xk.
//
// Backward pass:
//   - d(Σx)/dxi = 1, so every input receives a copy of outputGrad
//
// All inputs must have the same length; no broadcasting is done.
type AddOp struct {
	forwardState
}

// NewAddOp creates a new AddOp.
func NewAddOp() *AddOp {
	return &AddOp{forwardState: newForwardState("add")}
}

// Forward sums the inputs element-wise.
func (op *AddOp) Forward(inputs []tensor.Value) tensor.Value {
	checkMinArity(op.name, inputs, 1)
	tensor.AssertSameLen(op.name, inputs...)

	output := tensor.Zeros(len(inputs[0]))
	for _, in := range inputs {
		tensor.AddInPlace(output, in)
	}
	op.record(inputs, len(output))
	return output
}

// Backward sends outputGrad unchanged to each of the fan-in inputs.
func (op *AddOp) Backward(outputGrad tensor.Value) []tensor.Value {
	op.checkBackward(outputGrad)
	grads := make([]tensor.Value, len(op.inputLens))
	for i := range grads {
		grads[i] = outputGrad.Clone()
	}
	return grads
}
