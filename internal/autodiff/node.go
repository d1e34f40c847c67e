package autodiff

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/vecgrad/internal/autodiff/ops"
	"github.com/born-ml/vecgrad/internal/tensor"
)

// Node is a handle to a vertex of a Graph. The zero Node is invalid.
//
// Handles are small values and can be copied freely; they stay valid until
// the owning graph's Teardown.
type Node struct {
	graph *Graph
	id    int
	epoch int
}

// ID returns the node's position in its graph's arena. Inputs always have
// smaller IDs than the nodes consuming them.
func (n Node) ID() int {
	return n.id
}

// Graph returns the graph that owns the node.
func (n Node) Graph() *Graph {
	return n.graph
}

// Value returns a copy of the value computed when the node was created.
func (n Node) Value() tensor.Value {
	return n.record("Value").value.Clone()
}

// Len returns the number of elements of the node's value.
func (n Node) Len() int {
	return len(n.record("Len").value)
}

// IsLeaf returns true for nodes created with CreateLeaf.
func (n Node) IsLeaf() bool {
	return n.record("IsLeaf").op == nil
}

// Operator returns the operator that produced the node, or nil for leaves.
func (n Node) Operator() ops.Operator {
	return n.record("Operator").op
}

// Inputs returns the nodes this node was computed from, in creation order.
func (n Node) Inputs() []Node {
	rec := n.record("Inputs")
	inputs := make([]Node, len(rec.inputs))
	for i, id := range rec.inputs {
		inputs[i] = n.graph.handle(id)
	}
	return inputs
}

// String implements fmt.Stringer, e.g. "#3(exp)" or "#0(leaf)".
func (n Node) String() string {
	if n.graph == nil {
		return "#invalid"
	}
	if n.epoch != n.graph.epoch || n.id < 0 || n.id >= len(n.graph.nodes) {
		return fmt.Sprintf("#%d(dangling)", n.id)
	}
	op := n.graph.nodes[n.id].op
	if op == nil {
		return fmt.Sprintf("#%d(leaf)", n.id)
	}
	return fmt.Sprintf("#%d(%s)", n.id, ops.NameOf(op))
}

func (n Node) record(method string) *nodeRecord {
	if n.graph == nil {
		panic(errors.Wrapf(ErrForeignNode, "Node.%s", method))
	}
	n.graph.checkNode("Node."+method, n)
	return &n.graph.nodes[n.id]
}
