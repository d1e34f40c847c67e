package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/vecgrad/internal/tensor"
)

// Errors wrapped by the panics of the graph API. The Try* variants return them
// as errors, so callers can use errors.Is.
var (
	// ErrForeignNode is returned for a node handle created by another graph, or a zero Node.
	ErrForeignNode = errors.New("node does not belong to this graph")

	// ErrDanglingNode is returned for a node handle used after Graph.Teardown.
	ErrDanglingNode = errors.New("node handle used after graph teardown")

	// ErrShapeMismatch is returned when an operator gets the wrong number of inputs
	// or inputs of mismatched lengths, or when a backward pass returns the wrong
	// number of gradients or a gradient whose length doesn't match its input.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrNonScalarTarget is returned when gradients are requested for a target whose
	// value doesn't have exactly one element.
	ErrNonScalarTarget = errors.New("gradient target must be scalar")

	// ErrCycle is returned if an input edge doesn't point to an older node.
	ErrCycle = errors.New("computation graph has a cycle")
)
