// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package backends

// InPlaceSupporter is implemented by backends that may not support functions writing their output in place
// (f(y, x) instead of y = f(x)). Backends that don't implement it are assumed to support it.
type InPlaceSupporter interface {
	SupportsInPlace() bool
}

// SupportsInPlace returns whether the backend can differentiate in-place functions.
func SupportsInPlace(backend Backend) bool {
	if s, ok := backend.(InPlaceSupporter); ok {
		return s.SupportsInPlace()
	}
	return true
}

// Capabilities summarizes what a backend (possibly a composition) supports, as seen by generic code.
type Capabilities struct {
	// Mode as returned by ResolveMode.
	Mode Mode

	// InPlace functions are supported.
	InPlace bool

	// Sparse is true if the backend is an AutoSparse, whose components can be extracted for a compressed
	// differentiation.
	Sparse bool

	// SecondOrder is true if the backend is a SecondOrder composition.
	SecondOrder bool
}

// CapabilitiesOf returns the Capabilities of the backend.
func CapabilitiesOf(backend Backend) Capabilities {
	_, isSecondOrder := backend.(SecondOrder)
	return Capabilities{
		Mode:        ResolveMode(backend),
		InPlace:     SupportsInPlace(backend),
		Sparse:      IsSparse(backend),
		SecondOrder: isSecondOrder,
	}
}
