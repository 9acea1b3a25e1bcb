package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/adtypes/backends"
	"github.com/gomlx/adtypes/pkg/core/sparsity"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestListBackends(t *testing.T) {
	out := listBackends()
	for _, name := range backends.List() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "AutoForwardDiff()")
	assert.Contains(t, out, "ForwardOrReverse")
	assert.Contains(t, out, "Symbolic")
}

func TestDescribeBackend(t *testing.T) {
	b, err := newBackend("enzyme:mode=reverse", true)
	require.NoError(t, err)
	assert.True(t, backends.IsSparse(b))
	out := describeBackend(b)
	assert.Contains(t, out, "AutoSparse(dense_ad=AutoEnzyme(mode=\"reverse\")")
	assert.Contains(t, out, "Reverse")
	assert.Contains(t, out, "dense backend")

	_, err = newBackend("forwarddiff:bogus=1", false)
	require.Error(t, err)
}

func TestColorPattern(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "pattern.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("# superdiagonal\nx x .\n. x x\n. . x\n"), 0o644))
	pattern, err := readPattern(filePath)
	require.NoError(t, err)
	assert.Equal(t, 5, pattern.NNZ())

	out, err := colorPattern(pattern, "greedy", "column")
	require.NoError(t, err)
	assert.Contains(t, out, "[1 2 1]")
	assert.Contains(t, out, "1.5x")

	out, err = colorPattern(pattern, "none", "Row")
	require.NoError(t, err)
	assert.Contains(t, out, "[1 2 3]")

	_, err = colorPattern(pattern, "greedy", "symmetric")
	require.ErrorIs(t, err, sparsity.ErrShape)
	_, err = colorPattern(pattern, "bogus", "column")
	require.Error(t, err)
	_, err = colorPattern(pattern, "greedy", "diagonal")
	require.Error(t, err)

	_, err = readPattern(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}

func TestCompareColorings(t *testing.T) {
	pattern, err := sparsity.Parse("x x . x\n. . x x\n. . . x\n")
	require.NoError(t, err)
	out, err := compareColorings(pattern, "column")
	require.NoError(t, err)
	assert.Contains(t, out, "NoColoringAlgorithm()")
	assert.Contains(t, out, "GreedyColoringAlgorithm(Natural)")
	assert.Contains(t, out, "GreedyColoringAlgorithm(LargestFirst)")
	assert.Contains(t, out, "1.33x")

	_, err = compareColorings(pattern, "symmetric")
	require.ErrorIs(t, err, sparsity.ErrShape)
}

func TestCheckFlags(t *testing.T) {
	require.NoError(t, checkFlags(nil, "", false))
	require.NoError(t, checkFlags(nil, "zygote", true))
	err := checkFlags(nil, "", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-backend")
	require.Error(t, checkFlags([]string{"extra"}, "zygote", false))
}
