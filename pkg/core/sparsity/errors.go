// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package sparsity

import "github.com/pkg/errors"

// Errors returned by detectors and, through package coloring, by coloring algorithms.
//
// They are always returned wrapped with some context (errors.Wrapf), so match them with errors.Is.
var (
	// ErrShape is returned when a matrix or a point has dimensions that violate a precondition:
	// negative sizes, ragged rows, a non-square matrix where a square one is required, etc.
	ErrShape = errors.New("shape error")

	// ErrDetectionFailure is returned when the function could not be evaluated or analyzed at the
	// given point to establish a sparsity pattern.
	ErrDetectionFailure = errors.New("sparsity detection failure")

	// ErrUnsupportedCapability is returned when a detector (or coloring algorithm) doesn't implement
	// the requested operation. E.g.: a Hessian-only detector asked for a Jacobian pattern.
	ErrUnsupportedCapability = errors.New("unsupported capability")
)
