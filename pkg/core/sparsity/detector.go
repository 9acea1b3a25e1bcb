// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package sparsity defines the contract for sparsity-pattern detection of Jacobians and Hessians, and the
// Pattern type it produces.
//
// The detectors here are trivial: NoSparsityDetector assumes a dense pattern, and the Known*SparsityDetector
// return a pattern given by the user. Real detectors, that trace or analyze the function, live elsewhere and
// only need to implement the Detector interface.
package sparsity

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Func is a vector-valued function y = f(x).
type Func func(x []float64) []float64

// InPlaceFunc is a vector-valued function that writes its result in the caller provided y.
type InPlaceFunc func(y, x []float64)

// ScalarFunc is a scalar-valued function, the kind of function one takes the Hessian of.
type ScalarFunc func(x []float64) float64

// Detector computes the sparsity pattern of the Jacobian or Hessian of a function at a point.
//
// Patterns returned must be conservative: any entry that may be nonzero must be marked.
// Detection is a one-shot synchronous query: errors are returned to the caller, never retried.
type Detector interface {
	// JacobianSparsity returns the pattern of the Jacobian of f at x, with shape (len(f(x)), len(x)).
	JacobianSparsity(f Func, x []float64) (*Pattern, error)

	// JacobianSparsityInPlace returns the pattern of the Jacobian of the in-place function f, with
	// shape (len(y), len(x)).
	JacobianSparsityInPlace(f InPlaceFunc, y, x []float64) (*Pattern, error)

	// HessianSparsity returns the pattern of the Hessian of f at x, with shape (len(x), len(x)).
	HessianSparsity(f ScalarFunc, x []float64) (*Pattern, error)

	// String returns a display name for the detector.
	String() string
}

// NoSparsityDetector doesn't detect anything, and always returns a full pattern.
//
// It's the default detector, and always a valid (but useless for compression) over-approximation.
type NoSparsityDetector struct{}

// Compile-time check that NoSparsityDetector implements Detector.
var _ Detector = NoSparsityDetector{}

// JacobianSparsity implements Detector. It evaluates f once to find the size of the output.
func (NoSparsityDetector) JacobianSparsity(f Func, x []float64) (*Pattern, error) {
	numOutputs, err := outputSize(f, x)
	if err != nil {
		return nil, err
	}
	return Full(numOutputs, len(x))
}

// JacobianSparsityInPlace implements Detector. It doesn't evaluate f.
func (NoSparsityDetector) JacobianSparsityInPlace(_ InPlaceFunc, y, x []float64) (*Pattern, error) {
	return Full(len(y), len(x))
}

// HessianSparsity implements Detector. It doesn't evaluate f.
func (NoSparsityDetector) HessianSparsity(_ ScalarFunc, x []float64) (*Pattern, error) {
	return Full(len(x), len(x))
}

// String implements Detector.
func (NoSparsityDetector) String() string { return "NoSparsityDetector()" }

// outputSize evaluates f(x) and returns the length of its output.
// A nil f or a panic during its evaluation are reported as ErrDetectionFailure.
func outputSize(f Func, x []float64) (int, error) {
	if f == nil {
		return 0, errors.Wrap(ErrDetectionFailure, "nil function given")
	}
	var y []float64
	exception := exceptions.Try(func() { y = f(x) })
	if exception != nil {
		if err, ok := exception.(error); ok {
			return 0, errors.Wrapf(ErrDetectionFailure, "evaluating function at x (len=%d): %v", len(x), err)
		}
		return 0, errors.Wrapf(ErrDetectionFailure, "evaluating function at x (len=%d): panic %v", len(x), exception)
	}
	return len(y), nil
}
