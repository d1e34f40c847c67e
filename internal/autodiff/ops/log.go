package ops

import (
	"math"

	"github.com/gomlx/exceptions"

	"github.com/born-ml/vecgrad/internal/tensor"
)

// DefaultLogEpsilon is the floor NewLogOp clamps its input to.
const DefaultLogEpsilon = 1e-8

// LogOp represents element-wise natural logarithm with a floor:
//
// Forward:
//
//	output = log(max(input, eps))
//
// Backward:
//
//	∂L/∂input = ∂L/∂output / max(input, eps)
//
// Non-positive (or tiny) inputs are clamped to eps in both passes, so the
// result is always finite. The clamped entries still receive a gradient of
// g/eps, matching the forward function used.
type LogOp struct {
	forwardState
	eps     float64
	clamped tensor.Value // max(input, eps)
}

// NewLogOp creates a log operation using DefaultLogEpsilon as floor.
func NewLogOp() *LogOp {
	return NewLogOpWithEpsilon(DefaultLogEpsilon)
}

// NewLogOpWithEpsilon creates a log operation with the given floor. It panics if eps <= 0.
func NewLogOpWithEpsilon(eps float64) *LogOp {
	if !(eps > 0) {
		exceptions.Panicf("log: epsilon must be positive, got %g", eps)
	}
	return &LogOp{forwardState: newForwardState("log"), eps: eps}
}

// Epsilon returns the floor applied to inputs.
func (op *LogOp) Epsilon() float64 {
	return op.eps
}

// Forward computes log(max(x, eps)).
func (op *LogOp) Forward(inputs []tensor.Value) tensor.Value {
	checkArity(op.name, inputs, 1)
	op.clamped = tensor.Map(inputs[0], func(x float64) float64 { return math.Max(x, op.eps) })
	output := tensor.Map(op.clamped, math.Log)
	op.record(inputs, len(output))
	return output
}

// Backward computes the gradient with respect to the input.
func (op *LogOp) Backward(outputGrad tensor.Value) []tensor.Value {
	op.checkBackward(outputGrad)
	grad := make(tensor.Value, len(outputGrad))
	for i, g := range outputGrad {
		grad[i] = g / op.clamped[i]
	}
	return []tensor.Value{grad}
}
