package ops

import "github.com/born-ml/vecgrad/internal/tensor"

// MulOp represents an element-wise (Hadamard) product: output = a ⊙ b.
//
// Backward pass:
//   - d(a⊙b)/da = b, so grad_a = outputGrad ⊙ b
//   - d(a⊙b)/db = a, so grad_b = outputGrad ⊙ a
//
// Both original inputs are cached by Forward.
type MulOp struct {
	forwardState
	a, b tensor.Value
}

// NewMulOp creates a new MulOp.
func NewMulOp() *MulOp {
	return &MulOp{forwardState: newForwardState("mul")}
}

// Forward computes a ⊙ b.
func (op *MulOp) Forward(inputs []tensor.Value) tensor.Value {
	checkArity(op.name, inputs, 2)
	tensor.AssertSameLen(op.name, inputs...)
	op.a = inputs[0].Clone()
	op.b = inputs[1].Clone()
	output := tensor.Mul(op.a, op.b)
	op.record(inputs, len(output))
	return output
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(outputGrad tensor.Value) []tensor.Value {
	op.checkBackward(outputGrad)
	return []tensor.Value{
		tensor.Mul(outputGrad, op.b),
		tensor.Mul(outputGrad, op.a),
	}
}
