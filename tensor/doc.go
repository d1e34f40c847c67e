// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides Value, the float64 vector flowing through vecgrad graphs.
//
// # Basic Usage
//
//	import "github.com/born-ml/vecgrad/tensor"
//
//	x := tensor.FromSlice([]float64{0.5, -0.1})
//	fmt.Println(x)           // "0.5 -0.1"
//	z := tensor.Zeros(x.Len())
package tensor
