// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import "github.com/born-ml/vecgrad/internal/autodiff/ops"

// DefaultLogEpsilon is the floor Log clamps its input to.
const DefaultLogEpsilon = ops.DefaultLogEpsilon

// Add returns an operator summing any number of equal-length inputs.
func Add() Operator { return ops.NewAddOp() }

// Sub returns an operator computing a - b.
func Sub() Operator { return ops.NewSubOp() }

// Mul returns an operator computing the element-wise product a ⊙ b.
func Mul() Operator { return ops.NewMulOp() }

// Scale returns an operator multiplying its input by factor.
func Scale(factor float64) Operator { return ops.NewScaleOp(factor) }

// Exp returns an element-wise exponential operator.
func Exp() Operator { return ops.NewExpOp() }

// Log returns an element-wise logarithm operator clamping inputs to DefaultLogEpsilon.
func Log() Operator { return ops.NewLogOp() }

// LogWithEpsilon returns a logarithm operator clamping inputs to eps.
func LogWithEpsilon(eps float64) Operator { return ops.NewLogOpWithEpsilon(eps) }

// Pow returns an operator raising each element to power.
func Pow(power float64) Operator { return ops.NewPowOp(power) }

// Concat returns an operator concatenating its inputs.
func Concat() Operator { return ops.NewCatOp() }

// ReduceSum returns an operator summing all elements into a single one.
func ReduceSum() Operator { return ops.NewReduceSumOp() }

// Dot returns an operator computing the inner product of two inputs.
func Dot() Operator { return ops.NewDotOp() }

// ReLU returns a rectified linear unit operator.
func ReLU() Operator { return ops.NewReLUOp() }

// Softmax returns a softmax operator over the whole input.
func Softmax() Operator { return ops.NewSoftmaxOp() }

// Sigmoid returns a logistic sigmoid operator.
func Sigmoid() Operator { return ops.NewSigmoidOp() }

// Tanh returns a hyperbolic tangent operator.
func Tanh() Operator { return ops.NewTanhOp() }
