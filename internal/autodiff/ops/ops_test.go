package ops_test

import (
	"math"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/vecgrad/internal/autodiff/ops"
	"github.com/born-ml/vecgrad/internal/tensor"
)

// assertValuesInDelta checks two Values element-wise within delta.
func assertValuesInDelta(t *testing.T, want, got tensor.Value, delta float64, msgAndArgs ...any) {
	t.Helper()
	require.Len(t, got, len(want), msgAndArgs...)
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, msgAndArgs...)
	}
}

// requireShapeMismatch checks fn panics with an error wrapping tensor.ErrShapeMismatch.
func requireShapeMismatch(t *testing.T, fn func(), msgAndArgs ...any) {
	t.Helper()
	err := exceptions.TryCatch[error](fn)
	require.Error(t, err, msgAndArgs...)
	require.True(t, errors.Is(err, tensor.ErrShapeMismatch), "unexpected error: %v", err)
}

func TestAddOp(t *testing.T) {
	op := ops.NewAddOp()
	out := op.Forward([]tensor.Value{{1, 2, 3}, {4, 5, 6}, {0.5, 0.5, 0.5}})
	assert.Equal(t, tensor.Value{5.5, 7.5, 9.5}, out)

	grads := op.Backward(tensor.Value{1, -1, 2})
	require.Len(t, grads, 3, "one gradient per fan-in input")
	for _, g := range grads {
		assert.Equal(t, tensor.Value{1, -1, 2}, g)
	}

	// Gradients must not alias each other.
	grads[0][0] = 100
	assert.Equal(t, 1.0, grads[1][0])
}

func TestAddOp_ShapeMismatch(t *testing.T) {
	requireShapeMismatch(t, func() { ops.NewAddOp().Forward([]tensor.Value{{1, 2}, {1}}) })
	requireShapeMismatch(t, func() { ops.NewAddOp().Forward(nil) })
}

func TestSubOp(t *testing.T) {
	op := ops.NewSubOp()
	out := op.Forward([]tensor.Value{{5, 7}, {1, 2}})
	assert.Equal(t, tensor.Value{4, 5}, out)

	grads := op.Backward(tensor.Value{1, 2})
	assert.Equal(t, tensor.Value{1, 2}, grads[0])
	assert.Equal(t, tensor.Value{-1, -2}, grads[1])

	requireShapeMismatch(t, func() { ops.NewSubOp().Forward([]tensor.Value{{1}}) })
}

func TestMulOp(t *testing.T) {
	op := ops.NewMulOp()
	out := op.Forward([]tensor.Value{{2, 3}, {4, 5}})
	assert.Equal(t, tensor.Value{8, 15}, out)

	grads := op.Backward(tensor.Value{1, 2})
	assert.Equal(t, tensor.Value{4, 10}, grads[0], "g ⊙ b")
	assert.Equal(t, tensor.Value{2, 6}, grads[1], "g ⊙ a")

	// Backward doesn't consume the cache.
	again := op.Backward(tensor.Value{1, 2})
	assert.Equal(t, grads, again)

	requireShapeMismatch(t, func() { ops.NewMulOp().Forward([]tensor.Value{{1, 2}, {1}}) })
}

func TestMulOp_CachesCopies(t *testing.T) {
	op := ops.NewMulOp()
	a := tensor.Value{2, 3}
	op.Forward([]tensor.Value{a, {4, 5}})
	a[0] = 100
	grads := op.Backward(tensor.Value{1, 1})
	assert.Equal(t, tensor.Value{2, 3}, grads[1])
}

func TestScaleOp(t *testing.T) {
	op := ops.NewScaleOp(0.5)
	assert.Equal(t, 0.5, op.Factor())
	assert.Equal(t, tensor.Value{1, -2}, op.Forward([]tensor.Value{{2, -4}}))
	assert.Equal(t, tensor.Value{0.5, 1}, op.Backward(tensor.Value{1, 2})[0])
}

func TestExpOp(t *testing.T) {
	op := ops.NewExpOp()
	x := tensor.Value{0, 1, -2}
	out := op.Forward([]tensor.Value{x})
	for i := range x {
		assert.InDelta(t, math.Exp(x[i]), out[i], 1e-12)
	}

	grads := op.Backward(tensor.Value{1, 1, 1})
	assertValuesInDelta(t, out, grads[0], 1e-12, "d(exp(x))/dx = exp(x)")

	// Mutating the returned output doesn't corrupt the cache.
	out[0] = 100
	assert.InDelta(t, 1.0, op.Backward(tensor.Value{1, 1, 1})[0][0], 1e-12)
}

func TestLogOp_Floor(t *testing.T) {
	op := ops.NewLogOp()
	assert.Equal(t, ops.DefaultLogEpsilon, op.Epsilon())

	out := op.Forward([]tensor.Value{{math.E, 0, -3}})
	assert.InDelta(t, 1.0, out[0], 1e-12)
	assert.InDelta(t, math.Log(ops.DefaultLogEpsilon), out[1], 1e-9, "zero is clamped")
	assert.InDelta(t, math.Log(ops.DefaultLogEpsilon), out[2], 1e-9, "negative is clamped")
	for _, y := range out {
		assert.False(t, math.IsInf(y, 0) || math.IsNaN(y))
	}

	grads := op.Backward(tensor.Value{1, 1, 2})
	assert.InDelta(t, 1/math.E, grads[0][0], 1e-12)
	assert.InDelta(t, 1/ops.DefaultLogEpsilon, grads[0][1], 1e-3, "backward uses the same floor")
	assert.InDelta(t, 2/ops.DefaultLogEpsilon, grads[0][2], 1e-3)
}

func TestLogOp_CustomEpsilon(t *testing.T) {
	op := ops.NewLogOpWithEpsilon(0.5)
	out := op.Forward([]tensor.Value{{0.1, 2}})
	assert.InDelta(t, math.Log(0.5), out[0], 1e-12)
	assert.InDelta(t, math.Log(2), out[1], 1e-12)

	require.Panics(t, func() { ops.NewLogOpWithEpsilon(0) })
	require.Panics(t, func() { ops.NewLogOpWithEpsilon(math.NaN()) })
}

func TestPowOp(t *testing.T) {
	op := ops.NewPowOp(3)
	assert.Equal(t, 3.0, op.Power())
	out := op.Forward([]tensor.Value{{2, -1}})
	assertValuesInDelta(t, tensor.Value{8, -1}, out, 1e-12)
	grads := op.Backward(tensor.Value{1, 2})
	assertValuesInDelta(t, tensor.Value{12, 6}, grads[0], 1e-12)

	zero := ops.NewPowOp(0)
	assert.Equal(t, tensor.Value{1, 1}, zero.Forward([]tensor.Value{{0, 5}}))
	assert.Equal(t, tensor.Value{0, 0}, zero.Backward(tensor.Value{1, 1})[0])
}

func TestReduceSumOp(t *testing.T) {
	op := ops.NewReduceSumOp()
	assert.Equal(t, tensor.Value{6}, op.Forward([]tensor.Value{{1, 2, 3}}))
	assert.Equal(t, tensor.Value{2.5, 2.5, 2.5}, op.Backward(tensor.Value{2.5})[0])

	requireShapeMismatch(t, func() { op.Backward(tensor.Value{1, 1}) }, "output gradient must be scalar")
}

func TestDotOp(t *testing.T) {
	op := ops.NewDotOp()
	assert.Equal(t, tensor.Value{32}, op.Forward([]tensor.Value{{1, 2, 3}, {4, 5, 6}}))

	grads := op.Backward(tensor.Value{2})
	assert.Equal(t, tensor.Value{8, 10, 12}, grads[0])
	assert.Equal(t, tensor.Value{2, 4, 6}, grads[1])

	requireShapeMismatch(t, func() { op.Backward(tensor.Value{1, 1, 1}) })
	requireShapeMismatch(t, func() { ops.NewDotOp().Forward([]tensor.Value{{1, 2}, {1, 2, 3}}) })
}

func TestReLUOp(t *testing.T) {
	op := ops.NewReLUOp()
	assert.Equal(t, tensor.Value{0, 0, 3}, op.Forward([]tensor.Value{{-1, 0, 3}}))
	assert.Equal(t, tensor.Value{0, 0, 5}, op.Backward(tensor.Value{5, 5, 5})[0])
}

func TestSigmoidOp(t *testing.T) {
	op := ops.NewSigmoidOp()
	out := op.Forward([]tensor.Value{{0, 1000, -1000}})
	assertValuesInDelta(t, tensor.Value{0.5, 1, 0}, out, 1e-12)

	grads := op.Backward(tensor.Value{1, 1, 1})
	assertValuesInDelta(t, tensor.Value{0.25, 0, 0}, grads[0], 1e-12)
}

func TestTanhOp(t *testing.T) {
	op := ops.NewTanhOp()
	out := op.Forward([]tensor.Value{{0, 0.5}})
	assertValuesInDelta(t, tensor.Value{0, math.Tanh(0.5)}, out, 1e-12)

	grads := op.Backward(tensor.Value{1, 2})
	y := math.Tanh(0.5)
	assertValuesInDelta(t, tensor.Value{1, 2 * (1 - y*y)}, grads[0], 1e-12)
}

func TestSoftmaxOp(t *testing.T) {
	op := ops.NewSoftmaxOp()
	out := op.Forward([]tensor.Value{{1, 2, 3}})
	assert.InDelta(t, 1.0, tensor.Sum(out), 1e-12)
	assert.Greater(t, out[2], out[1])

	// Large inputs stay finite.
	big := ops.NewSoftmaxOp().Forward([]tensor.Value{{1000, 1000}})
	assertValuesInDelta(t, tensor.Value{0.5, 0.5}, big, 1e-12)

	// A uniform output gradient has no effect on softmax inputs.
	grads := op.Backward(tensor.Value{1, 1, 1})
	assertValuesInDelta(t, tensor.Value{0, 0, 0}, grads[0], 1e-12)

	assert.Empty(t, ops.NewSoftmaxOp().Forward([]tensor.Value{{}}))
}

func TestBackwardBeforeForward(t *testing.T) {
	all := []ops.Operator{
		ops.NewAddOp(), ops.NewSubOp(), ops.NewMulOp(), ops.NewScaleOp(2),
		ops.NewExpOp(), ops.NewLogOp(), ops.NewPowOp(2), ops.NewCatOp(),
		ops.NewReduceSumOp(), ops.NewDotOp(), ops.NewReLUOp(), ops.NewSoftmaxOp(),
		ops.NewSigmoidOp(), ops.NewTanhOp(),
	}
	for _, op := range all {
		t.Run(ops.NameOf(op), func(t *testing.T) {
			require.Panics(t, func() { op.Backward(tensor.Value{1}) })
		})
	}
}

func TestBackward_WrongGradientLength(t *testing.T) {
	op := ops.NewExpOp()
	op.Forward([]tensor.Value{{1, 2}})
	requireShapeMismatch(t, func() { op.Backward(tensor.Value{1}) })
	requireShapeMismatch(t, func() { op.Backward(tensor.Value{1, 2, 3}) })
}

func TestUnaryOps_Arity(t *testing.T) {
	unary := []ops.Operator{
		ops.NewScaleOp(2), ops.NewExpOp(), ops.NewLogOp(), ops.NewPowOp(2),
		ops.NewReduceSumOp(), ops.NewReLUOp(), ops.NewSoftmaxOp(),
		ops.NewSigmoidOp(), ops.NewTanhOp(),
	}
	for _, op := range unary {
		t.Run(ops.NameOf(op), func(t *testing.T) {
			requireShapeMismatch(t, func() { op.Forward([]tensor.Value{{1}, {2}}) })
			requireShapeMismatch(t, func() { op.Forward(nil) })
		})
	}
}

// TestForward_OverwritesCache checks that a second Forward on the same operator
// makes Backward differentiate the new inputs.
func TestForward_OverwritesCache(t *testing.T) {
	op := ops.NewMulOp()
	op.Forward([]tensor.Value{{1, 2}, {3, 4}})
	first := op.Backward(tensor.Value{1, 1})

	op.Forward([]tensor.Value{{10}, {20}})
	require.Panics(t, func() { op.Backward(tensor.Value{1, 1}) }, "old output length no longer valid")

	second := op.Backward(tensor.Value{1})
	assert.Equal(t, tensor.Value{20}, second[0])
	assert.NotEqual(t, first[0], second[0])
}

type anonymousOp struct{}

func (anonymousOp) Forward(inputs []tensor.Value) tensor.Value { return inputs[0] }
func (anonymousOp) Backward(g tensor.Value) []tensor.Value    { return []tensor.Value{g} }

func TestNameOf(t *testing.T) {
	assert.Equal(t, "exp", ops.NameOf(ops.NewExpOp()))
	assert.Equal(t, "concat", ops.NameOf(ops.NewCatOp()))
	assert.Equal(t, "ops_test.anonymousOp", ops.NameOf(anonymousOp{}))
}
