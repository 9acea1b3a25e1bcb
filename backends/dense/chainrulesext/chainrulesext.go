// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package chainrulesext refines the mode of dense.ChainRules backends according to their rule configuration.
//
// To use it simply include:
//
//	import _ "github.com/gomlx/adtypes/backends/dense/chainrulesext"
package chainrulesext

import (
	"github.com/gomlx/adtypes/backends"
	"github.com/gomlx/adtypes/backends/dense"
)

func init() {
	backends.RegisterModeResolver(Mode)
}

// Mode returns ModeForward if the rule configuration only has forwards mode, ModeReverse if it only has
// reverse mode, and ModeForwardOrReverse otherwise.
func Mode(b dense.ChainRules) backends.Mode {
	rc := b.RuleConfig
	switch {
	case rc.HasForwardsMode && !rc.HasReverseMode:
		return backends.ModeForward
	case rc.HasReverseMode && !rc.HasForwardsMode:
		return backends.ModeReverse
	default:
		return backends.ModeForwardOrReverse
	}
}
