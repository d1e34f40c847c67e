package autodiff

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/vecgrad/internal/autodiff/ops"
	"github.com/born-ml/vecgrad/internal/tensor"
)

// ComputeGradients returns the gradient of target with respect to each node
// in wrt, in order. Each gradient has the length of its node's value.
//
// The target must be scalar (a value of length 1); its gradient is seeded with [1].
// A node of wrt that target doesn't depend on gets a zero gradient.
//
// Algorithm:
//  1. Count, for every node reachable from target, how many edges of the
//     reachable subgraph point to it (its outdegree)
//  2. Walk breadth-first from target: each node calls its operator's Backward
//     with its accumulated gradient, adds the results into its inputs'
//     gradients, and an input is queued only once all its consumers have
//     contributed, that is, when its outdegree count drops to zero
//
// It panics on foreign or dangling handles, a non-scalar target, or an
// operator returning gradients of the wrong count or length.
func (g *Graph) ComputeGradients(target Node, wrt ...Node) []tensor.Value {
	g.checkNode("ComputeGradients", target)
	for _, n := range wrt {
		g.checkNode("ComputeGradients", n)
	}
	if l := len(g.nodes[target.id].value); l != 1 {
		panic(errors.Wrapf(ErrNonScalarTarget, "%s.ComputeGradients(%s): target has %d elements",
			g.name, target, l))
	}

	outdegrees := g.outdegrees(target.id)
	gradients := g.propagate(target.id, outdegrees)

	results := make([]tensor.Value, len(wrt))
	for i, n := range wrt {
		grad, found := gradients[n.id]
		if !found {
			results[i] = tensor.Zeros(len(g.nodes[n.id].value))
			continue
		}
		results[i] = grad.Clone()
	}
	klog.V(1).Infof("%s: computed gradients of %s w.r.t. %d nodes (%d nodes reached)",
		g.name, target, len(wrt), len(gradients))
	return results
}

// TryComputeGradients is like ComputeGradients but returns an error instead of panicking.
func (g *Graph) TryComputeGradients(target Node, wrt ...Node) (grads []tensor.Value, err error) {
	err = exceptions.TryCatch[error](func() {
		grads = g.ComputeGradients(target, wrt...)
	})
	return
}

// outdegrees counts, for every node reachable from root, the number of times it
// appears as an input of the other reachable nodes. A node shared by two
// consumers counts twice, even though it is expanded only once.
func (g *Graph) outdegrees(root int) map[int]int {
	outdegrees := map[int]int{root: 0}
	visited := map[int]bool{root: true}
	queue := []int{root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, input := range g.nodes[id].inputs {
			if input >= id {
				panic(errors.Wrapf(ErrCycle, "%s: node #%d has input #%d", g.name, id, input))
			}
			outdegrees[input]++
			if !visited[input] {
				visited[input] = true
				queue = append(queue, input)
			}
		}
	}
	return outdegrees
}

// propagate runs the backward pass from root and returns the accumulated
// gradient of every node it reached, leaves included.
func (g *Graph) propagate(root int, outdegrees map[int]int) map[int]tensor.Value {
	gradients := map[int]tensor.Value{root: {1.0}}
	queue := []int{root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		rec := &g.nodes[id]
		if rec.op == nil {
			// Leaves accumulate gradient but have nothing to propagate to.
			continue
		}

		inputGrads := rec.op.Backward(gradients[id].Clone())
		if len(inputGrads) != len(rec.inputs) {
			panic(errors.Wrapf(ErrShapeMismatch, "%s: %s returned %d gradients for %d inputs",
				g.name, ops.NameOf(rec.op), len(inputGrads), len(rec.inputs)))
		}
		if klog.V(2).Enabled() {
			klog.Infof("%s: backward #%d(%s) -> inputs %v", g.name, id, ops.NameOf(rec.op), rec.inputs)
		}

		for i, input := range rec.inputs {
			grad := inputGrads[i]
			if want := len(g.nodes[input].value); len(grad) != want {
				panic(errors.Wrapf(ErrShapeMismatch, "%s: %s gradient #%d has %d elements, input #%d has %d",
					g.name, ops.NameOf(rec.op), i, len(grad), input, want))
			}
			acc, found := gradients[input]
			if !found {
				acc = tensor.Zeros(len(grad))
				gradients[input] = acc
			}
			tensor.AddInPlace(acc, grad)
			outdegrees[input]--
			if outdegrees[input] == 0 {
				queue = append(queue, input)
			}
		}
	}
	return gradients
}
