// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides eager reverse-mode automatic differentiation over
// float64 vectors.
//
// Nodes are created through a Graph: leaves hold literal values, derived nodes
// run their operator's forward pass immediately. ComputeGradients then
// propagates adjoints from a scalar target back to any set of nodes.
//
// Example:
//
//	import (
//	    "github.com/born-ml/vecgrad/autodiff"
//	    "github.com/born-ml/vecgrad/tensor"
//	)
//
//	func main() {
//	    g := autodiff.New()
//	    defer g.Teardown()
//
//	    x := g.CreateLeaf(tensor.Value{0.5})
//	    y := g.CreateLeaf(tensor.Value{-0.1})
//	    out := g.CreateNode(autodiff.Exp(), g.CreateNode(autodiff.Add(), x, y))
//
//	    grads := g.ComputeGradients(out, x, y) // [[exp(0.4)], [exp(0.4)]]
//	}
package autodiff

import (
	"github.com/born-ml/vecgrad/internal/autodiff"
	"github.com/born-ml/vecgrad/internal/autodiff/ops"
)

// Graph owns the nodes and operators of a computation.
type Graph = autodiff.Graph

// Node is a handle to a vertex of a Graph.
type Node = autodiff.Node

// Option configures a Graph.
type Option = autodiff.Option

// Operator is the forward/backward contract every differentiable primitive implements.
type Operator = ops.Operator

// Errors reported by the Try* methods of Graph.
var (
	ErrForeignNode     = autodiff.ErrForeignNode
	ErrDanglingNode    = autodiff.ErrDanglingNode
	ErrShapeMismatch   = autodiff.ErrShapeMismatch
	ErrNonScalarTarget = autodiff.ErrNonScalarTarget
	ErrCycle           = autodiff.ErrCycle
)

// New creates an empty Graph.
func New(opts ...Option) *Graph {
	return autodiff.New(opts...)
}

// WithCapacity pre-allocates room for n nodes.
func WithCapacity(n int) Option {
	return autodiff.WithCapacity(n)
}

// WithName sets the graph name used in logs and errors.
func WithName(name string) Option {
	return autodiff.WithName(name)
}
