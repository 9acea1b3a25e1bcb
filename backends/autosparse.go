// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package backends

import (
	"fmt"

	"github.com/gomlx/adtypes/pkg/core/coloring"
	"github.com/gomlx/adtypes/pkg/core/sparsity"
	"github.com/gomlx/exceptions"
)

// AutoSparseName is the name returned by AutoSparse.Name.
const AutoSparseName = "sparse"

// AutoSparse composes a dense backend with a sparsity detector and a coloring algorithm into a sparse
// differentiation strategy.
//
// It can be used wherever a Backend is expected: its Mode is the one of the dense backend. Downstream
// sparse pipelines extract the three components with DenseAD, SparsityDetector and ColoringAlgorithm.
//
// It is an immutable value: create it with NewAutoSparse. The components are shared, not owned.
type AutoSparse struct {
	dense    Backend
	detector sparsity.Detector
	coloring coloring.Algorithm
}

// Compile-time check that AutoSparse implements Backend.
var (
	_ Backend          = AutoSparse{}
	_ InPlaceSupporter = AutoSparse{}
)

// SparseOption configures NewAutoSparse.
type SparseOption func(s *AutoSparse)

// WithSparsityDetector sets the sparsity detector of the AutoSparse. A nil detector keeps the default.
func WithSparsityDetector(detector sparsity.Detector) SparseOption {
	return func(s *AutoSparse) {
		if detector != nil {
			s.detector = detector
		}
	}
}

// WithColoringAlgorithm sets the coloring algorithm of the AutoSparse. A nil algorithm keeps the default.
func WithColoringAlgorithm(algorithm coloring.Algorithm) SparseOption {
	return func(s *AutoSparse) {
		if algorithm != nil {
			s.coloring = algorithm
		}
	}
}

// NewAutoSparse wraps the dense backend into a sparse differentiation strategy.
//
// The detector defaults to sparsity.NoSparsityDetector and the coloring to coloring.NoColoringAlgorithm:
// without options the result behaves as the dense backend with no compression, it never fails.
//
// It panics if dense is nil.
func NewAutoSparse(dense Backend, options ...SparseOption) AutoSparse {
	if dense == nil {
		exceptions.Panicf("NewAutoSparse requires a dense backend, got nil")
	}
	s := AutoSparse{
		dense:    dense,
		detector: sparsity.NoSparsityDetector{},
		coloring: coloring.NoColoringAlgorithm{},
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

// DenseAD returns the wrapped dense backend.
func (s AutoSparse) DenseAD() Backend { return s.dense }

// SparsityDetector returns the sparsity detector.
func (s AutoSparse) SparsityDetector() sparsity.Detector { return s.detector }

// ColoringAlgorithm returns the coloring algorithm.
func (s AutoSparse) ColoringAlgorithm() coloring.Algorithm { return s.coloring }

// Name implements Backend.
func (s AutoSparse) Name() string { return AutoSparseName }

// String implements Backend.
func (s AutoSparse) String() string {
	return fmt.Sprintf("AutoSparse(dense_ad=%s, sparsity_detector=%s, coloring_algorithm=%s)",
		s.dense, s.detector, s.coloring)
}

// Mode implements Backend, and returns the resolved mode of the dense backend.
// The detector and the coloring algorithm never affect it.
func (s AutoSparse) Mode() Mode { return ResolveMode(s.dense) }

// SupportsInPlace implements InPlaceSupporter, forwarding to the dense backend.
func (s AutoSparse) SupportsInPlace() bool { return SupportsInPlace(s.dense) }

// DenseAD returns the dense backend wrapped by an AutoSparse, or the backend itself if it is not sparse.
func DenseAD(backend Backend) Backend {
	if s, ok := backend.(AutoSparse); ok {
		return s.dense
	}
	return backend
}

// IsSparse returns whether the backend is an AutoSparse.
func IsSparse(backend Backend) bool {
	_, ok := backend.(AutoSparse)
	return ok
}
