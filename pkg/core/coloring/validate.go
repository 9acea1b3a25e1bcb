// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package coloring

import (
	"slices"

	"github.com/gomlx/adtypes/pkg/core/sparsity"
	"github.com/pkg/errors"
)

// NumColors returns the number of distinct colors used.
func NumColors(colors []int) int {
	seen := make(map[int]struct{}, len(colors))
	for _, c := range colors {
		seen[c] = struct{}{}
	}
	return len(seen)
}

// Groups returns the indices (columns or rows) of each color class, ordered by color.
// Each group is sorted in increasing order.
func Groups(colors []int) [][]int {
	if len(colors) == 0 {
		return nil
	}
	distinct := slices.Clone(colors)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)
	groups := make([][]int, len(distinct))
	for idx, c := range colors {
		g, _ := slices.BinarySearch(distinct, c)
		groups[g] = append(groups[g], idx)
	}
	return groups
}

func checkColors(colors []int, n int, what string) error {
	if len(colors) != n {
		return errors.Wrapf(ErrShape, "coloring has %d colors, but pattern has %d %s", len(colors), n, what)
	}
	for idx, c := range colors {
		if c <= 0 {
			return errors.Wrapf(ErrInvalidColoring, "%s %d has non-positive color %d", what, idx, c)
		}
	}
	return nil
}

// rowColorCounts returns for each row of m, the count of nonzeros per color (of their columns).
func rowColorCounts(m *sparsity.Pattern, colors []int) []map[int]int {
	counts := make([]map[int]int, m.Rows())
	for row := range counts {
		counts[row] = make(map[int]int)
		for _, col := range m.RowNonZeros(row) {
			counts[row][colors[col]]++
		}
	}
	return counts
}

// ValidateColumnColoring returns an error if colors is not a valid column coloring of m:
// no two columns with the same color may have a nonzero in the same row.
func ValidateColumnColoring(m *sparsity.Pattern, colors []int) error {
	if err := checkPattern(m); err != nil {
		return err
	}
	if err := checkColors(colors, m.Cols(), "columns"); err != nil {
		return err
	}
	for row, counts := range rowColorCounts(m, colors) {
		for color, count := range counts {
			if count > 1 {
				return errors.Wrapf(ErrInvalidColoring, "row %d has %d nonzeros in columns of color %d",
					row, count, color)
			}
		}
	}
	return nil
}

// ValidateRowColoring returns an error if colors is not a valid row coloring of m:
// no two rows with the same color may have a nonzero in the same column.
func ValidateRowColoring(m *sparsity.Pattern, colors []int) error {
	if err := checkPattern(m); err != nil {
		return err
	}
	if err := checkColors(colors, m.Rows(), "rows"); err != nil {
		return err
	}
	for col, counts := range rowColorCounts(m.Transpose(), colors) {
		for color, count := range counts {
			if count > 1 {
				return errors.Wrapf(ErrInvalidColoring, "column %d has %d nonzeros in rows of color %d",
					col, count, color)
			}
		}
	}
	return nil
}

// ValidateSymmetricColoring returns an error if colors is not a valid symmetric coloring of m: for every
// nonzero m[i,j], either column j is the only one of its color in row i, or column i is the only one of its
// color in row j.
func ValidateSymmetricColoring(m *sparsity.Pattern, colors []int) error {
	if err := checkSymmetric(m); err != nil {
		return err
	}
	if err := checkColors(colors, m.Cols(), "columns"); err != nil {
		return err
	}
	counts := rowColorCounts(m, colors)
	for i := range m.Rows() {
		for _, j := range m.RowNonZeros(i) {
			if counts[i][colors[j]] == 1 || counts[j][colors[i]] == 1 {
				continue
			}
			return errors.Wrapf(ErrInvalidColoring,
				"nonzero (%d, %d) can't be recovered: color %d repeats in row %d and color %d repeats in row %d",
				i, j, colors[j], i, colors[i], j)
		}
	}
	return nil
}

// Validate dispatches to the validation function of the given partition.
func Validate(m *sparsity.Pattern, partition Partition, colors []int) error {
	switch partition {
	case PartitionColumn:
		return ValidateColumnColoring(m, colors)
	case PartitionRow:
		return ValidateRowColoring(m, colors)
	case PartitionSymmetric:
		return ValidateSymmetricColoring(m, colors)
	default:
		return errors.Wrapf(ErrUnsupportedCapability, "unknown partition %s", partition)
	}
}
