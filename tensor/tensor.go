// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/vecgrad/internal/tensor"

// Value is a fixed-length vector of float64.
type Value = tensor.Value

// FromSlice creates a Value holding a copy of data.
func FromSlice(data []float64) Value {
	return tensor.FromSlice(data)
}

// Zeros creates a Value of length n filled with 0.
func Zeros(n int) Value {
	return tensor.Zeros(n)
}

// Ones creates a Value of length n filled with 1.
func Ones(n int) Value {
	return tensor.Ones(n)
}

// Full creates a Value of length n filled with x.
func Full(n int, x float64) Value {
	return tensor.Full(n, x)
}
