// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dense

import "github.com/gomlx/adtypes/backends"

// Registered names of the symbolic backends.
const (
	SymbolicsName           = "symbolics"
	FastDifferentiationName = "fastdifferentiation"
)

// Symbolics describes the Symbolics computer algebra system.
type Symbolics struct{}

// Name implements backends.Backend.
func (Symbolics) Name() string { return SymbolicsName }

// Mode implements backends.Backend.
func (Symbolics) Mode() backends.Mode { return backends.ModeSymbolic }

// String implements backends.Backend.
func (Symbolics) String() string { return display("AutoSymbolics") }

var newSymbolics = noConfig(SymbolicsName, Symbolics{})

// FastDifferentiation describes the FastDifferentiation engine, which differentiates expression graphs
// symbolically.
type FastDifferentiation struct{}

// Name implements backends.Backend.
func (FastDifferentiation) Name() string { return FastDifferentiationName }

// Mode implements backends.Backend.
func (FastDifferentiation) Mode() backends.Mode { return backends.ModeSymbolic }

// String implements backends.Backend.
func (FastDifferentiation) String() string { return display("AutoFastDifferentiation") }

var newFastDifferentiation = noConfig(FastDifferentiationName, FastDifferentiation{})
