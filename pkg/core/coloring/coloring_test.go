// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package coloring_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/gomlx/adtypes/pkg/core/coloring"
	"github.com/gomlx/adtypes/pkg/core/sparsity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coord = sparsity.Coordinate

// superDiagonal is the 3x3 identity-plus-superdiagonal pattern.
func superDiagonal(t *testing.T) *sparsity.Pattern {
	p, err := sparsity.FromCoordinates(3, 3,
		coord{Row: 0, Col: 0}, coord{Row: 1, Col: 1}, coord{Row: 2, Col: 2}, coord{Row: 0, Col: 1}, coord{Row: 1, Col: 2})
	require.NoError(t, err)
	return p
}

// arrow is a symmetric 3x3 pattern with a dense first row and column plus the diagonal.
func arrow(t *testing.T) *sparsity.Pattern {
	p, err := sparsity.Parse("xxx\nxx.\nx.x")
	require.NoError(t, err)
	return p
}

func randomPattern(rng *rand.Rand, rows, cols int, density float64, symmetric bool) *sparsity.Pattern {
	var coords []coord
	for row := range rows {
		for col := range cols {
			if rng.Float64() < density {
				coords = append(coords, coord{Row: row, Col: col})
				if symmetric {
					coords = append(coords, coord{Row: col, Col: row})
				}
			}
		}
	}
	p, err := sparsity.FromCoordinates(rows, cols, coords...)
	if err != nil {
		panic(err)
	}
	return p
}

func TestNoColoringAlgorithm(t *testing.T) {
	var algo coloring.Algorithm = coloring.NoColoringAlgorithm{}
	m, err := sparsity.Full(2, 4)
	require.NoError(t, err)

	colors, err := algo.ColumnColoring(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, colors)

	colors, err = algo.RowColoring(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, colors)

	sym, err := sparsity.Full(3, 3)
	require.NoError(t, err)
	colors, err = algo.SymmetricColoring(sym)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, colors)

	empty, err := sparsity.Zeros(0, 0)
	require.NoError(t, err)
	colors, err = algo.ColumnColoring(empty)
	require.NoError(t, err)
	assert.Empty(t, colors)
}

func TestSymmetricColoringPreconditions(t *testing.T) {
	nonSquare, err := sparsity.Full(2, 3)
	require.NoError(t, err)
	for _, algo := range []coloring.Algorithm{
		coloring.NoColoringAlgorithm{},
		coloring.GreedyColoringAlgorithm{},
		coloring.GreedyColoringAlgorithm{Order: coloring.OrderLargestFirst},
	} {
		t.Run(algo.String(), func(t *testing.T) {
			_, err := algo.SymmetricColoring(nonSquare)
			require.ErrorIs(t, err, coloring.ErrShape)

			_, err = algo.SymmetricColoring(superDiagonal(t))
			require.ErrorIs(t, err, coloring.ErrShape)

			_, err = algo.ColumnColoring(nil)
			require.ErrorIs(t, err, coloring.ErrShape)
		})
	}
}

func TestGreedySuperDiagonal(t *testing.T) {
	m := superDiagonal(t)
	colors, err := coloring.GreedyColoringAlgorithm{}.ColumnColoring(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, colors)
	require.NoError(t, coloring.ValidateColumnColoring(m, colors))

	// The identity is also valid, with one more color.
	identity, err := coloring.NoColoringAlgorithm{}.ColumnColoring(m)
	require.NoError(t, err)
	require.NoError(t, coloring.ValidateColumnColoring(m, identity))
	assert.Equal(t, coloring.NumColors(colors)+1, coloring.NumColors(identity))

	// Rows 0 and 2 share no column.
	colors, err = coloring.GreedyColoringAlgorithm{}.RowColoring(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, colors)
	require.NoError(t, coloring.ValidateRowColoring(m, colors))
}

func TestGreedyLargestFirst(t *testing.T) {
	// Column 3 conflicts with all others, so it is visited (and colored) first.
	m, err := sparsity.Parse(`
x x . x
. . x x
. . . x`)
	require.NoError(t, err)
	colors, err := coloring.GreedyColoringAlgorithm{Order: coloring.OrderLargestFirst}.ColumnColoring(m)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 2, 1}, colors)
	assert.Equal(t, 3, coloring.NumColors(colors))
	require.NoError(t, coloring.ValidateColumnColoring(m, colors))
}

func TestValidityOnRandomPatterns(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	algos := []coloring.Algorithm{
		coloring.NoColoringAlgorithm{},
		coloring.GreedyColoringAlgorithm{},
		coloring.GreedyColoringAlgorithm{Order: coloring.OrderLargestFirst},
	}
	for trial := range 20 {
		rows, cols := 1+rng.IntN(15), 1+rng.IntN(15)
		density := []float64{0.05, 0.2, 0.5}[trial%3]
		m := randomPattern(rng, rows, cols, density, false)
		n := 1 + rng.IntN(15)
		sym := randomPattern(rng, n, n, density, true)
		require.True(t, sym.IsSymmetric())
		for _, algo := range algos {
			name := fmt.Sprintf("trial=%d/%s", trial, algo)
			colors, err := algo.ColumnColoring(m)
			require.NoError(t, err, name)
			require.Len(t, colors, cols)
			require.NoError(t, coloring.ValidateColumnColoring(m, colors), name)

			colors, err = algo.RowColoring(m)
			require.NoError(t, err, name)
			require.Len(t, colors, rows)
			require.NoError(t, coloring.ValidateRowColoring(m, colors), name)

			colors, err = algo.SymmetricColoring(sym)
			require.NoError(t, err, name)
			require.Len(t, colors, n)
			require.NoError(t, coloring.ValidateSymmetricColoring(sym, colors), name)
		}
	}
}

func TestValidate(t *testing.T) {
	m := superDiagonal(t)
	require.ErrorIs(t, coloring.ValidateColumnColoring(m, []int{1, 1, 2}), coloring.ErrInvalidColoring)
	require.ErrorIs(t, coloring.ValidateColumnColoring(m, []int{1, 2}), coloring.ErrShape)
	require.ErrorIs(t, coloring.ValidateColumnColoring(m, []int{0, 1, 2}), coloring.ErrInvalidColoring)
	require.ErrorIs(t, coloring.ValidateRowColoring(m, []int{1, 1, 2}), coloring.ErrInvalidColoring)

	// The symmetric criterion is weaker than the column one.
	a := arrow(t)
	require.NoError(t, coloring.ValidateSymmetricColoring(a, []int{1, 2, 2}))
	require.ErrorIs(t, coloring.ValidateColumnColoring(a, []int{1, 2, 2}), coloring.ErrInvalidColoring)
	require.ErrorIs(t, coloring.ValidateSymmetricColoring(a, []int{1, 1, 1}), coloring.ErrInvalidColoring)
	require.ErrorIs(t, coloring.ValidateSymmetricColoring(m, []int{1, 2, 3}), coloring.ErrShape)

	require.NoError(t, coloring.Validate(a, coloring.PartitionSymmetric, []int{1, 2, 2}))
	require.ErrorIs(t, coloring.Validate(a, coloring.Partition(7), []int{1, 2, 2}), coloring.ErrUnsupportedCapability)
}

func TestGroups(t *testing.T) {
	assert.Equal(t, [][]int{{0, 2}, {1}}, coloring.Groups([]int{1, 2, 1}))
	assert.Equal(t, [][]int{{1}, {0, 3}, {2}}, coloring.Groups([]int{5, 2, 9, 5}))
	assert.Nil(t, coloring.Groups(nil))
	assert.Equal(t, 3, coloring.NumColors([]int{5, 2, 9, 5}))
}

func TestConstantColoring(t *testing.T) {
	a := arrow(t)
	_, err := coloring.NewConstantColoring(a, coloring.PartitionColumn, []int{1, 2, 2})
	require.ErrorIs(t, err, coloring.ErrInvalidColoring)

	algo, err := coloring.NewConstantColoring(a, coloring.PartitionSymmetric, []int{1, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, coloring.PartitionSymmetric, algo.Partition())
	colors, err := algo.SymmetricColoring(a)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2}, colors)

	// Returned colors are a copy.
	colors[0] = 100
	colors, err = coloring.Color(algo, a, coloring.PartitionSymmetric)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2}, colors)

	_, err = algo.ColumnColoring(a)
	require.ErrorIs(t, err, coloring.ErrUnsupportedCapability)
	full, err := sparsity.Full(3, 3)
	require.NoError(t, err)
	_, err = algo.SymmetricColoring(full)
	require.ErrorIs(t, err, coloring.ErrShape)
	assert.Equal(t, "ConstantColoringAlgorithm(Symmetric, 3x3, colors=2)", algo.String())

	// Zero value, not created with NewConstantColoring.
	empty := &coloring.ConstantColoringAlgorithm{}
	assert.Equal(t, "ConstantColoringAlgorithm(Column, nil)", empty.String())
	_, err = empty.ColumnColoring(full)
	require.ErrorIs(t, err, coloring.ErrShape)
	assert.NotContains(t, err.Error(), "PANIC")
	assert.Contains(t, err.Error(), "ConstantColoringAlgorithm(Column, nil)")
}

func TestByName(t *testing.T) {
	for _, name := range coloring.AlgorithmNames {
		algo, err := coloring.ByName(name)
		require.NoError(t, err)
		require.NotNil(t, algo)
	}
	algo, err := coloring.ByName("greedy-largest-first")
	require.NoError(t, err)
	assert.Equal(t, coloring.GreedyColoringAlgorithm{Order: coloring.OrderLargestFirst}, algo)
	assert.Equal(t, "GreedyColoringAlgorithm(LargestFirst)", algo.String())
	_, err = coloring.ByName("dsatur")
	require.Error(t, err)

	p, err := coloring.PartitionString("symmetric")
	require.NoError(t, err)
	assert.Equal(t, coloring.PartitionSymmetric, p)
}
