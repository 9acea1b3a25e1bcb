// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package enzymeext refines the mode of dense.Enzyme backends according to their engine configuration.
//
// Without it, dense.Enzyme always reports backends.ModeForwardOrReverse. To use it simply include:
//
//	import _ "github.com/gomlx/adtypes/backends/dense/enzymeext"
package enzymeext

import (
	"github.com/gomlx/adtypes/backends"
	"github.com/gomlx/adtypes/backends/dense"
)

func init() {
	backends.RegisterModeResolver(Mode)
}

// Mode returns ModeForward or ModeReverse if the Enzyme engine is configured for it, and
// ModeForwardOrReverse otherwise.
func Mode(b dense.Enzyme) backends.Mode {
	switch b.EngineMode {
	case dense.EnzymeForward:
		return backends.ModeForward
	case dense.EnzymeReverse:
		return backends.ModeReverse
	default:
		return backends.ModeForwardOrReverse
	}
}
