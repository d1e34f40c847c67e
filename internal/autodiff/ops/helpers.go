package ops

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/born-ml/vecgrad/internal/tensor"
)

// forwardState records the shapes seen by the last Forward call.
//
// It is embedded in every operator so that Backward can fail fast when
// called before Forward, or with a gradient of the wrong length.
type forwardState struct {
	name      string
	ready     bool
	inputLens []int
	outputLen int
}

func newForwardState(name string) forwardState {
	return forwardState{name: name}
}

// Name returns the operator name.
func (s *forwardState) Name() string {
	return s.name
}

// record overwrites the previous forward shapes.
func (s *forwardState) record(inputs []tensor.Value, outputLen int) {
	s.inputLens = s.inputLens[:0]
	for _, in := range inputs {
		s.inputLens = append(s.inputLens, len(in))
	}
	s.outputLen = outputLen
	s.ready = true
}

// checkBackward panics unless a Forward happened and outputGrad matches its output length.
// A length mismatch wraps tensor.ErrShapeMismatch.
func (s *forwardState) checkBackward(outputGrad tensor.Value) {
	if !s.ready {
		exceptions.Panicf("%s: Backward called before Forward", s.name)
	}
	if len(outputGrad) != s.outputLen {
		panic(errors.Wrapf(tensor.ErrShapeMismatch, "%s: output gradient has %d elements, forward output had %d",
			s.name, len(outputGrad), s.outputLen))
	}
}

// checkArity panics unless exactly n inputs were given.
func checkArity(name string, inputs []tensor.Value, n int) {
	if len(inputs) != n {
		panic(errors.Wrapf(tensor.ErrShapeMismatch, "%s: expected %d input(s), got %d", name, n, len(inputs)))
	}
}

// checkMinArity panics unless at least n inputs were given.
func checkMinArity(name string, inputs []tensor.Value, n int) {
	if len(inputs) < n {
		panic(errors.Wrapf(tensor.ErrShapeMismatch, "%s: expected at least %d input(s), got %d", name, n, len(inputs)))
	}
}

func typeName(op Operator) string {
	return fmt.Sprintf("%T", op)
}
