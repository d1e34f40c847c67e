package ops

import (
	"math"

	"github.com/born-ml/vecgrad/internal/tensor"
)

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input = grad_output ⊙ output
type ExpOp struct {
	forwardState
	output tensor.Value
}

// NewExpOp creates a new ExpOp.
func NewExpOp() *ExpOp {
	return &ExpOp{forwardState: newForwardState("exp")}
}

// Forward computes exp(x) and caches the result.
func (op *ExpOp) Forward(inputs []tensor.Value) tensor.Value {
	checkArity(op.name, inputs, 1)
	op.output = tensor.Map(inputs[0], math.Exp)
	op.record(inputs, len(op.output))
	return op.output.Clone()
}

// Backward computes input gradient for exp.
//
// Since d(exp(x))/dx = exp(x), and we already have exp(x) as output:
// grad_input = grad_output ⊙ output.
func (op *ExpOp) Backward(outputGrad tensor.Value) []tensor.Value {
	op.checkBackward(outputGrad)
	return []tensor.Value{tensor.Mul(outputGrad, op.output)}
}
