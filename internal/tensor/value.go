// Package tensor provides Value, the fixed-length float64 vector that flows
// through the computation graph, plus the small set of element-wise helpers
// the engine and the operators share.
package tensor

import (
	"strconv"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Value is an ordered, fixed-length sequence of float64.
//
// A Value is produced once, when its node is created, and is never mutated
// afterwards. Helpers that return a Value always return a fresh slice.
type Value []float64

// FromSlice creates a Value holding a copy of data.
func FromSlice(data []float64) Value {
	v := make(Value, len(data))
	copy(v, data)
	return v
}

// Zeros creates a Value of length n filled with 0.
func Zeros(n int) Value {
	if n < 0 {
		exceptions.Panicf("tensor.Zeros: negative length %d", n)
	}
	return make(Value, n)
}

// Ones creates a Value of length n filled with 1.
func Ones(n int) Value {
	return Full(n, 1.0)
}

// Full creates a Value of length n filled with x.
func Full(n int, x float64) Value {
	v := Zeros(n)
	for i := range v {
		v[i] = x
	}
	return v
}

// Len returns the number of elements.
func (v Value) Len() int {
	return len(v)
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	return FromSlice(v)
}

// Equal reports whether v and other have the same length and elements.
func (v Value) Equal(other Value) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// String formats the elements separated by single spaces, e.g. "0.5 -0.1".
func (v Value) String() string {
	var sb strings.Builder
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return sb.String()
}

// AssertSameLen panics with ErrShapeMismatch if any of the values has a length
// different from the first. The op string prefixes the panic message.
func AssertSameLen(op string, values ...Value) {
	if len(values) == 0 {
		return
	}
	n := len(values[0])
	for i, v := range values[1:] {
		if len(v) != n {
			panic(errors.Wrapf(ErrShapeMismatch, "%s: value #0 has %d elements but value #%d has %d",
				op, n, i+1, len(v)))
		}
	}
}

// AddInPlace adds src into dst element-wise. Lengths must match.
func AddInPlace(dst, src Value) {
	AssertSameLen("tensor.AddInPlace", dst, src)
	for i := range dst {
		dst[i] += src[i]
	}
}

// Add returns a + b.
func Add(a, b Value) Value {
	out := a.Clone()
	AddInPlace(out, b)
	return out
}

// Mul returns the element-wise (Hadamard) product a ⊙ b.
func Mul(a, b Value) Value {
	AssertSameLen("tensor.Mul", a, b)
	out := make(Value, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out
}

// Scale returns c·v.
func Scale(v Value, c float64) Value {
	out := make(Value, len(v))
	for i, x := range v {
		out[i] = c * x
	}
	return out
}

// Map returns fn applied to every element of v.
func Map(v Value, fn func(float64) float64) Value {
	out := make(Value, len(v))
	for i, x := range v {
		out[i] = fn(x)
	}
	return out
}

// Sum returns the sum of the elements of v.
func Sum(v Value) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}

// Dot returns the inner product of a and b.
func Dot(a, b Value) float64 {
	AssertSameLen("tensor.Dot", a, b)
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
