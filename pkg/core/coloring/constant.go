// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package coloring

import (
	"fmt"
	"slices"

	"github.com/gomlx/adtypes/pkg/core/sparsity"
	"github.com/pkg/errors"
)

// ConstantColoringAlgorithm returns a coloring computed in advance, for one pattern and one partition.
//
// Create it with NewConstantColoring. Asking for another partition returns ErrUnsupportedCapability, and
// asking with a different pattern returns ErrShape.
type ConstantColoringAlgorithm struct {
	pattern   *sparsity.Pattern
	partition Partition
	colors    []int
}

var _ Algorithm = (*ConstantColoringAlgorithm)(nil)

// NewConstantColoring validates the colors for the pattern and partition, and returns an Algorithm that
// will always return them.
func NewConstantColoring(pattern *sparsity.Pattern, partition Partition, colors []int) (*ConstantColoringAlgorithm, error) {
	if err := Validate(pattern, partition, colors); err != nil {
		return nil, errors.WithMessage(err, "NewConstantColoring")
	}
	return &ConstantColoringAlgorithm{pattern: pattern, partition: partition, colors: slices.Clone(colors)}, nil
}

// Partition returns the partition for which the coloring was given.
func (c *ConstantColoringAlgorithm) Partition() Partition { return c.partition }

func (c *ConstantColoringAlgorithm) coloring(m *sparsity.Pattern, partition Partition) ([]int, error) {
	if err := checkPattern(m); err != nil {
		return nil, err
	}
	if c.pattern == nil {
		return nil, errors.Wrapf(ErrShape, "%s has no pattern, create it with NewConstantColoring", c)
	}
	if partition != c.partition {
		return nil, errors.Wrapf(ErrUnsupportedCapability, "%s has no %s coloring", c, partition)
	}
	if !m.Equal(c.pattern) {
		return nil, errors.Wrapf(ErrShape, "%s was given a different pattern of shape (%d, %d)", c, m.Rows(), m.Cols())
	}
	return slices.Clone(c.colors), nil
}

// ColumnColoring implements Algorithm.
func (c *ConstantColoringAlgorithm) ColumnColoring(m *sparsity.Pattern) ([]int, error) {
	return c.coloring(m, PartitionColumn)
}

// RowColoring implements Algorithm.
func (c *ConstantColoringAlgorithm) RowColoring(m *sparsity.Pattern) ([]int, error) {
	return c.coloring(m, PartitionRow)
}

// SymmetricColoring implements Algorithm.
func (c *ConstantColoringAlgorithm) SymmetricColoring(m *sparsity.Pattern) ([]int, error) {
	return c.coloring(m, PartitionSymmetric)
}

// String implements Algorithm.
func (c *ConstantColoringAlgorithm) String() string {
	if c.pattern == nil {
		return fmt.Sprintf("ConstantColoringAlgorithm(%s, nil)", c.partition)
	}
	return fmt.Sprintf("ConstantColoringAlgorithm(%s, %dx%d, colors=%d)",
		c.partition, c.pattern.Rows(), c.pattern.Cols(), NumColors(c.colors))
}
