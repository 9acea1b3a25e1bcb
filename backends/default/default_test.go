// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package _default

import (
	"testing"

	"github.com/gomlx/adtypes/backends"
	"github.com/gomlx/adtypes/backends/dense"
	"github.com/gomlx/adtypes/pkg/core/coloring"
	"github.com/gomlx/adtypes/pkg/core/sparsity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBackends(t *testing.T) {
	assert.Len(t, backends.List(), 17)
	t.Setenv(backends.ConfigEnvVar, "")
	b, err := backends.New()
	require.NoError(t, err)
	assert.Equal(t, dense.DefaultBackend, b.Name())
	for _, name := range backends.List() {
		b := backends.MustNewWithConfig(name)
		assert.True(t, backends.ResolveMode(b).IsAMode(), name)
		assert.Equal(t, backends.ResolveMode(b), backends.NewAutoSparse(b).Mode(), name)
	}
}

func TestPluginsResolveModes(t *testing.T) {
	for config, want := range map[string]backends.Mode{
		"enzyme":                       backends.ModeForwardOrReverse,
		"enzyme:mode=forward":          backends.ModeForward,
		"enzyme:mode=reverse":          backends.ModeReverse,
		"chainrules:forward":           backends.ModeForward,
		"chainrules:reverse":           backends.ModeReverse,
		"chainrules:forward,reverse":   backends.ModeForwardOrReverse,
		"reactant":                     backends.ModeForwardOrReverse,
		"reactant:enzyme:mode=reverse": backends.ModeReverse,
		"reactant:chainrules:forward":  backends.ModeForward,
		"diffractor":                   backends.ModeForwardOrReverse,
		"fastdifferentiation":          backends.ModeSymbolic,
	} {
		b := backends.MustNewWithConfig(config)
		assert.Equalf(t, want, backends.ResolveMode(b), "config %q", config)
		assert.Equalf(t, want, backends.NewAutoSparse(b).Mode(), "config %q", config)
	}
}

func TestSparsePipeline(t *testing.T) {
	pattern, err := sparsity.Parse(`
		x x . .
		. x x .
		. . x x
		. . . x`)
	require.NoError(t, err)
	for config, partition := range map[string]coloring.Partition{
		"forwarddiff":         coloring.PartitionColumn,
		"enzyme:mode=reverse": coloring.PartitionRow,
	} {
		s := backends.NewAutoSparse(backends.MustNewWithConfig(config),
			backends.WithSparsityDetector(sparsity.KnownJacobianSparsityDetector{Pattern: pattern}),
			backends.WithColoringAlgorithm(coloring.GreedyColoringAlgorithm{}))
		p, err := s.SparsityDetector().JacobianSparsity(func(x []float64) []float64 { return x }, make([]float64, 4))
		require.NoError(t, err)
		got := coloring.PartitionRow
		if backends.ResolveMode(s) == backends.ModeForward {
			got = coloring.PartitionColumn
		}
		require.Equal(t, partition, got, config)
		colors, err := coloring.Color(s.ColoringAlgorithm(), p, got)
		require.NoError(t, err)
		assert.Equal(t, 2, coloring.NumColors(colors), config)
		require.NoError(t, coloring.Validate(p, got, colors))
	}
}
