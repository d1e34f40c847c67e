// Package autodiff implements eager (define-by-run) reverse-mode automatic
// differentiation over float64 vectors.
//
// Architecture:
//   - Graph: an arena owning every Node and Operator created through it
//   - Node: an opaque handle (graph + index) to a value-producing vertex
//   - ops.Operator: forward/backward contract implemented by each primitive
//   - ComputeGradients: breadth-first scheduler that only propagates a node's
//     gradient once every consumer has contributed to it
//
// Usage:
//
//	g := autodiff.New()
//	x := g.CreateLeaf(tensor.Value{0.5})
//	y := g.CreateLeaf(tensor.Value{-0.1})
//	s := g.CreateNode(ops.NewAddOp(), x, y)
//	out := g.CreateNode(ops.NewExpOp(), s)
//	grads := g.ComputeGradients(out, x, y) // [[exp(0.4)], [exp(0.4)]]
//
// A Graph is not safe for concurrent use.
package autodiff

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/vecgrad/internal/autodiff/ops"
	"github.com/born-ml/vecgrad/internal/tensor"
)

// nodeRecord is the arena entry behind a Node handle.
type nodeRecord struct {
	value  tensor.Value
	op     ops.Operator // nil for leaves
	inputs []int        // arena indices, each smaller than the record's own index
}

// Graph owns all nodes and operators created through it.
//
// Nodes are never removed individually: Teardown releases all of them at once.
type Graph struct {
	name  string
	nodes []nodeRecord

	// epoch is incremented by Teardown, invalidating all handles issued before.
	epoch int
}

// New creates an empty Graph.
func New(opts ...Option) *Graph {
	g := &Graph{
		name:  "graph",
		nodes: make([]nodeRecord, 0, defaultCapacity),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the graph name given by WithName.
func (g *Graph) Name() string {
	return g.name
}

// NumNodes returns the number of nodes owned by the graph.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// CreateLeaf creates a node with no operator and no inputs holding a copy of value.
func (g *Graph) CreateLeaf(value tensor.Value) Node {
	g.nodes = append(g.nodes, nodeRecord{value: value.Clone()})
	return g.handle(len(g.nodes) - 1)
}

// CreateNode creates a derived node by running op.Forward on the values of inputs,
// in order. The graph takes ownership of op, which must not back any other node.
//
// It panics if any input is foreign to the graph or was invalidated by Teardown,
// or if op.Forward rejects the inputs.
func (g *Graph) CreateNode(op ops.Operator, inputs ...Node) Node {
	if op == nil {
		exceptions.Panicf("%s.CreateNode: nil operator", g.name)
	}
	ids := make([]int, len(inputs))
	values := make([]tensor.Value, len(inputs))
	for i, in := range inputs {
		g.checkNode("CreateNode", in)
		ids[i] = in.id
		values[i] = g.nodes[in.id].value.Clone()
	}
	value := op.Forward(values)
	g.nodes = append(g.nodes, nodeRecord{value: value, op: op, inputs: ids})
	node := g.handle(len(g.nodes) - 1)
	if klog.V(2).Enabled() {
		klog.Infof("%s: created %s from %v", g.name, node, inputs)
	}
	return node
}

// TryCreateNode is like CreateNode but returns an error instead of panicking.
func (g *Graph) TryCreateNode(op ops.Operator, inputs ...Node) (node Node, err error) {
	err = exceptions.TryCatch[error](func() {
		node = g.CreateNode(op, inputs...)
	})
	return
}

// Teardown releases every node and operator owned by the graph. Handles issued
// before the call become invalid. It is safe to call Teardown multiple times,
// and the graph can be reused afterwards.
func (g *Graph) Teardown() {
	if len(g.nodes) > 0 {
		klog.V(1).Infof("%s: teardown releasing %d nodes", g.name, len(g.nodes))
	}
	g.nodes = nil
	g.epoch++
}

func (g *Graph) handle(id int) Node {
	return Node{graph: g, id: id, epoch: g.epoch}
}

// checkNode panics unless n is a live handle of this graph.
func (g *Graph) checkNode(method string, n Node) {
	if n.graph != g {
		panic(errors.Wrapf(ErrForeignNode, "%s.%s(%s)", g.name, method, n))
	}
	if n.epoch != g.epoch || n.id < 0 || n.id >= len(g.nodes) {
		panic(errors.Wrapf(ErrDanglingNode, "%s.%s(%s)", g.name, method, n))
	}
}
