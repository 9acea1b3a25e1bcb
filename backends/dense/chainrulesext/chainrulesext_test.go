// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package chainrulesext

import (
	"testing"

	"github.com/gomlx/adtypes/backends"
	"github.com/gomlx/adtypes/backends/dense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	for _, tc := range []struct {
		forward, reverse bool
		want             backends.Mode
	}{
		{false, false, backends.ModeForwardOrReverse},
		{true, false, backends.ModeForward},
		{false, true, backends.ModeReverse},
		{true, true, backends.ModeForwardOrReverse},
	} {
		b := dense.ChainRules{RuleConfig: dense.RuleConfig{Name: "rc", HasForwardsMode: tc.forward, HasReverseMode: tc.reverse}}
		assert.Equalf(t, tc.want, Mode(b), "forward=%v, reverse=%v", tc.forward, tc.reverse)
		assert.Equal(t, tc.want, backends.ResolveMode(b))
		assert.Equal(t, backends.ModeForwardOrReverse, b.Mode())
	}
}

func TestModeFromConfig(t *testing.T) {
	b, err := backends.NewWithConfig("chainrules:ruleconfig=zygote,reverse")
	require.NoError(t, err)
	assert.Equal(t, backends.ModeReverse, backends.ResolveMode(b))
	assert.Equal(t, backends.ModeReverse, backends.NewAutoSparse(b).Mode())
	assert.Equal(t, backends.ModeReverse, backends.NewSecondOrder(b, dense.ForwardDiff{}).Mode())
}
