package ops

import "github.com/born-ml/vecgrad/internal/tensor"

// ReLUOp represents a ReLU (Rectified Linear Unit) activation: output = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x > 0, else 0
//
// Forward records a mask of the entries that were kept, Backward multiplies
// the output gradient by it.
type ReLUOp struct {
	forwardState
	mask []bool
}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp() *ReLUOp {
	return &ReLUOp{forwardState: newForwardState("relu")}
}

// Forward computes max(0, x).
func (op *ReLUOp) Forward(inputs []tensor.Value) tensor.Value {
	checkArity(op.name, inputs, 1)
	in := inputs[0]
	output := make(tensor.Value, len(in))
	op.mask = make([]bool, len(in))
	for i, x := range in {
		if x > 0 {
			output[i] = x
			op.mask[i] = true
		}
	}
	op.record(inputs, len(output))
	return output
}

// Backward computes input gradient for ReLU.
func (op *ReLUOp) Backward(outputGrad tensor.Value) []tensor.Value {
	op.checkBackward(outputGrad)
	grad := make(tensor.Value, len(outputGrad))
	for i, g := range outputGrad {
		if op.mask[i] {
			grad[i] = g
		}
	}
	return []tensor.Value{grad}
}
