// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package sparsity

import (
	"fmt"

	"github.com/pkg/errors"
)

// KnownJacobianSparsityDetector returns a Jacobian pattern known in advance, after checking its shape matches
// the function's input and output.
//
// It doesn't support Hessian patterns.
type KnownJacobianSparsityDetector struct {
	Pattern *Pattern
}

// KnownHessianSparsityDetector returns a Hessian pattern known in advance, after checking its shape matches
// the function's input.
//
// It doesn't support Jacobian patterns.
type KnownHessianSparsityDetector struct {
	Pattern *Pattern
}

var (
	_ Detector = KnownJacobianSparsityDetector{}
	_ Detector = KnownHessianSparsityDetector{}
)

func checkKnownShape(p *Pattern, rows, cols int) (*Pattern, error) {
	if p == nil {
		return nil, errors.Wrap(ErrShape, "known sparsity detector has no pattern")
	}
	if p.rows != rows || p.cols != cols {
		return nil, errors.Wrapf(ErrShape, "known pattern has shape (%d, %d), but the derivative has shape (%d, %d)",
			p.rows, p.cols, rows, cols)
	}
	return p, nil
}

// JacobianSparsity implements Detector. It evaluates f once, only to check the output size.
func (d KnownJacobianSparsityDetector) JacobianSparsity(f Func, x []float64) (*Pattern, error) {
	numOutputs, err := outputSize(f, x)
	if err != nil {
		return nil, err
	}
	return checkKnownShape(d.Pattern, numOutputs, len(x))
}

// JacobianSparsityInPlace implements Detector.
func (d KnownJacobianSparsityDetector) JacobianSparsityInPlace(_ InPlaceFunc, y, x []float64) (*Pattern, error) {
	return checkKnownShape(d.Pattern, len(y), len(x))
}

// HessianSparsity is not supported and returns ErrUnsupportedCapability.
func (d KnownJacobianSparsityDetector) HessianSparsity(_ ScalarFunc, _ []float64) (*Pattern, error) {
	return nil, errors.Wrapf(ErrUnsupportedCapability, "%s can't provide Hessian sparsity", d)
}

// String implements Detector.
func (d KnownJacobianSparsityDetector) String() string {
	if d.Pattern == nil {
		return "KnownJacobianSparsityDetector(nil)"
	}
	return fmt.Sprintf("KnownJacobianSparsityDetector(%dx%d, nnz=%d)", d.Pattern.rows, d.Pattern.cols, d.Pattern.NNZ())
}

// JacobianSparsity is not supported and returns ErrUnsupportedCapability.
func (d KnownHessianSparsityDetector) JacobianSparsity(_ Func, _ []float64) (*Pattern, error) {
	return nil, errors.Wrapf(ErrUnsupportedCapability, "%s can't provide Jacobian sparsity", d)
}

// JacobianSparsityInPlace is not supported and returns ErrUnsupportedCapability.
func (d KnownHessianSparsityDetector) JacobianSparsityInPlace(_ InPlaceFunc, _, _ []float64) (*Pattern, error) {
	return nil, errors.Wrapf(ErrUnsupportedCapability, "%s can't provide Jacobian sparsity", d)
}

// HessianSparsity implements Detector.
func (d KnownHessianSparsityDetector) HessianSparsity(_ ScalarFunc, x []float64) (*Pattern, error) {
	return checkKnownShape(d.Pattern, len(x), len(x))
}

// String implements Detector.
func (d KnownHessianSparsityDetector) String() string {
	if d.Pattern == nil {
		return "KnownHessianSparsityDetector(nil)"
	}
	return fmt.Sprintf("KnownHessianSparsityDetector(%dx%d, nnz=%d)", d.Pattern.rows, d.Pattern.cols, d.Pattern.NNZ())
}
