// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package coloring defines the contract for structurally orthogonal partitions ("colorings") of the
// columns or rows of a sparsity pattern, used to compress the evaluation of sparse Jacobians and Hessians.
//
// A coloring is a []int with one positive color per column (or row). Colorings must be valid:
//
//   - Column coloring: for every nonzero M[i,j], column j is the only column of color c[j] with a nonzero in row i.
//   - Row coloring: the same, on the transpose of M.
//   - Symmetric coloring (M square and symmetric): for every nonzero M[i,j], either column j is the only one of
//     color c[j] in row i, or column i is the only one of color c[i] in row j.
//
// Minimizing the number of colors is NP-hard, and not required: it's a quality concern of each algorithm.
// NoColoringAlgorithm is always valid and never compresses anything.
package coloring

import (
	"github.com/gomlx/adtypes/pkg/core/sparsity"
	"github.com/pkg/errors"
)

// Errors returned by coloring algorithms. The first ones are shared with package sparsity.
var (
	ErrShape                 = sparsity.ErrShape
	ErrUnsupportedCapability = sparsity.ErrUnsupportedCapability

	// ErrInvalidColoring is returned when a coloring has non-positive colors or violates the
	// structural orthogonality invariant.
	ErrInvalidColoring = errors.New("invalid coloring")
)

// Algorithm partitions the columns or rows of a sparsity pattern into colors.
type Algorithm interface {
	// ColumnColoring returns one color per column of m.
	ColumnColoring(m *sparsity.Pattern) ([]int, error)

	// RowColoring returns one color per row of m.
	RowColoring(m *sparsity.Pattern) ([]int, error)

	// SymmetricColoring returns one color per column of m, which must be square and structurally symmetric,
	// otherwise it returns ErrShape.
	SymmetricColoring(m *sparsity.Pattern) ([]int, error)

	// String returns a display name for the algorithm.
	String() string
}

// Partition is the kind of coloring: of columns, of rows or symmetric.
type Partition int

//go:generate go tool enumer -type=Partition -trimprefix=Partition -text -output=gen_partition_enumer.go coloring.go

const (
	PartitionColumn Partition = iota
	PartitionRow
	PartitionSymmetric
)

// Color uses the given algorithm to color m according to partition.
func Color(algo Algorithm, m *sparsity.Pattern, partition Partition) ([]int, error) {
	switch partition {
	case PartitionColumn:
		return algo.ColumnColoring(m)
	case PartitionRow:
		return algo.RowColoring(m)
	case PartitionSymmetric:
		return algo.SymmetricColoring(m)
	default:
		return nil, errors.Wrapf(ErrUnsupportedCapability, "unknown partition %s", partition)
	}
}

func checkPattern(m *sparsity.Pattern) error {
	if m == nil {
		return errors.Wrap(ErrShape, "nil pattern given to coloring")
	}
	return nil
}

// checkSymmetric validates the precondition of a symmetric coloring.
func checkSymmetric(m *sparsity.Pattern) error {
	if err := checkPattern(m); err != nil {
		return err
	}
	if !m.IsSquare() {
		return errors.Wrapf(ErrShape, "symmetric coloring requires a square pattern, got shape (%d, %d)",
			m.Rows(), m.Cols())
	}
	if !m.IsSymmetric() {
		return errors.Wrapf(ErrShape, "symmetric coloring requires a structurally symmetric pattern")
	}
	return nil
}

// NoColoringAlgorithm gives each column (or row) its own color: the identity partition [1, 2, ..., n].
//
// It is always valid, and provides no compression.
type NoColoringAlgorithm struct{}

// Compile-time check that NoColoringAlgorithm implements Algorithm.
var _ Algorithm = NoColoringAlgorithm{}

func identityColoring(n int) []int {
	colors := make([]int, n)
	for ii := range colors {
		colors[ii] = ii + 1
	}
	return colors
}

// ColumnColoring implements Algorithm.
func (NoColoringAlgorithm) ColumnColoring(m *sparsity.Pattern) ([]int, error) {
	if err := checkPattern(m); err != nil {
		return nil, err
	}
	return identityColoring(m.Cols()), nil
}

// RowColoring implements Algorithm.
func (NoColoringAlgorithm) RowColoring(m *sparsity.Pattern) ([]int, error) {
	if err := checkPattern(m); err != nil {
		return nil, err
	}
	return identityColoring(m.Rows()), nil
}

// SymmetricColoring implements Algorithm.
// The identity is valid for any pattern, but the precondition is still checked.
func (NoColoringAlgorithm) SymmetricColoring(m *sparsity.Pattern) ([]int, error) {
	if err := checkSymmetric(m); err != nil {
		return nil, err
	}
	return identityColoring(m.Cols()), nil
}

// String implements Algorithm.
func (NoColoringAlgorithm) String() string { return "NoColoringAlgorithm()" }
