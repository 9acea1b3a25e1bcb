// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package enzymeext

import (
	"testing"

	"github.com/gomlx/adtypes/backends"
	"github.com/gomlx/adtypes/backends/dense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	assert.Equal(t, backends.ModeForward, Mode(dense.Enzyme{EngineMode: dense.EnzymeForward}))
	assert.Equal(t, backends.ModeReverse, Mode(dense.Enzyme{EngineMode: dense.EnzymeReverse}))
	assert.Equal(t, backends.ModeForwardOrReverse, Mode(dense.Enzyme{}))

	// The descriptor itself stays conservative, the plugin is only visible through ResolveMode.
	b := dense.Enzyme{EngineMode: dense.EnzymeReverse, FunctionAnnotation: dense.EnzymeDuplicated}
	assert.Equal(t, backends.ModeForwardOrReverse, b.Mode())
	assert.Equal(t, backends.ModeReverse, backends.ResolveMode(b))
}

func TestModeThroughWrappers(t *testing.T) {
	b, err := backends.NewWithConfig("enzyme:mode=forward")
	require.NoError(t, err)
	assert.Equal(t, backends.ModeForward, backends.ResolveMode(b))
	assert.Equal(t, backends.ModeForward, backends.NewAutoSparse(b).Mode())
	assert.Equal(t, backends.ModeForward, backends.ResolveMode(backends.NewAutoSparse(b)))

	r, err := backends.NewWithConfig("reactant:enzyme:mode=reverse")
	require.NoError(t, err)
	assert.Equal(t, backends.ModeReverse, r.Mode())
	assert.Equal(t, backends.ModeForwardOrReverse, dense.Reactant{}.Mode())
}
