// Package ops defines the operator contract of the autodiff engine and the
// catalogue of concrete operators.
//
// Each operator implements the Operator interface, which provides:
//   - Forward pass: computes the output Value from the input Values, caching
//     whatever the backward pass needs
//   - Backward pass: computes one adjoint per input given the output adjoint
//
// Supported operations:
//   - AddOp: element-wise sum of any number of inputs (d(Σx)/dxi = 1)
//   - SubOp: element-wise subtraction
//   - MulOp: element-wise product (d(a⊙b)/da = b, d(a⊙b)/db = a)
//   - ScaleOp: multiplication by a constant
//   - ExpOp, LogOp, PowOp: element-wise exp, floored log and power
//   - CatOp: concatenation (backward partitions the gradient)
//   - ReduceSumOp, DotOp: reductions to a single element
//   - ReLUOp, SigmoidOp, TanhOp, SoftmaxOp: activations
package ops

import "github.com/born-ml/vecgrad/internal/tensor"

// Operator represents a differentiable transform bound to exactly one node of
// the computation graph.
//
// Operators are stateful and not reentrant: Forward caches what Backward
// needs, and the most recent Forward call is the one Backward differentiates.
type Operator interface {
	// Forward computes the output from the inputs, in order.
	// It panics if the number of inputs or their lengths are invalid.
	Forward(inputs []tensor.Value) tensor.Value

	// Backward computes the gradients of the inputs given the gradient of
	// the output. It returns one Value per input passed to the last Forward,
	// in the same order and with the same lengths.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)]
	Backward(outputGrad tensor.Value) []tensor.Value
}

// Named is implemented by operators that report a short name, used in logs
// and error messages.
type Named interface {
	Name() string
}

// NameOf returns the operator name, or its Go type if it doesn't implement Named.
func NameOf(op Operator) string {
	if n, ok := op.(Named); ok {
		return n.Name()
	}
	return typeName(op)
}
