// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package backends

import (
	"testing"

	"github.com/gomlx/adtypes/pkg/core/coloring"
	"github.com/gomlx/adtypes/pkg/core/sparsity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoSparseDefaults(t *testing.T) {
	dense := fakeBackend{name: "fakereverse", mode: ModeReverse}
	implicit := NewAutoSparse(dense)
	explicit := NewAutoSparse(dense,
		WithSparsityDetector(sparsity.NoSparsityDetector{}),
		WithColoringAlgorithm(coloring.NoColoringAlgorithm{}))
	assert.True(t, implicit == explicit)
	assert.Equal(t, implicit.String(), explicit.String())

	// Nil components keep the defaults.
	assert.True(t, implicit == NewAutoSparse(dense, WithSparsityDetector(nil), WithColoringAlgorithm(nil)))
}

func TestAutoSparseComponents(t *testing.T) {
	pattern, err := sparsity.FromCoordinates(3, 3,
		sparsity.Coordinate{Row: 0, Col: 0}, sparsity.Coordinate{Row: 1, Col: 1}, sparsity.Coordinate{Row: 2, Col: 2},
		sparsity.Coordinate{Row: 0, Col: 1}, sparsity.Coordinate{Row: 1, Col: 2})
	require.NoError(t, err)
	dense := fakeBackend{name: "fakeforward", mode: ModeForward, inPlace: true}
	detector := sparsity.KnownJacobianSparsityDetector{Pattern: pattern}
	algo := coloring.GreedyColoringAlgorithm{}
	s := NewAutoSparse(dense, WithSparsityDetector(detector), WithColoringAlgorithm(algo))

	// Components are returned as given, and don't affect the mode.
	assert.Equal(t, Backend(dense), s.DenseAD())
	assert.Equal(t, sparsity.Detector(detector), s.SparsityDetector())
	assert.Equal(t, coloring.Algorithm(algo), s.ColoringAlgorithm())
	assert.Equal(t, ModeForward, s.Mode())
	assert.Equal(t, s.Mode(), s.Mode())

	// Drive the pipeline as a downstream consumer would: detect, then color columns for forward mode.
	identity := func(x []float64) []float64 { return x }
	p, err := s.SparsityDetector().JacobianSparsity(identity, make([]float64, 3))
	require.NoError(t, err)
	partition := coloring.PartitionRow
	if ResolveMode(s).SupportsForward() {
		partition = coloring.PartitionColumn
	}
	colors, err := coloring.Color(s.ColoringAlgorithm(), p, partition)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, colors)
	require.NoError(t, coloring.Validate(p, partition, colors))
}
