// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package backends

// Mode classifies the differentiation paradigm of a Backend.
//
// It's a closed enum, used by generic code to pick an algorithm: e.g., to compute a Jacobian with
// forward mode one pushes forward one basis vector per (colored) column, while with reverse mode one pulls
// back one basis vector per (colored) row.
type Mode int

//go:generate go tool enumer -type=Mode -trimprefix=Mode -text -output=gen_mode_enumer.go mode.go

const (
	// ModeInvalid is the zero value, never returned by a valid Backend.
	ModeInvalid Mode = iota

	// ModeForward propagates derivatives from inputs to outputs (pushforward, JVP).
	ModeForward

	// ModeReverse propagates derivatives from outputs to inputs (pullback, VJP).
	ModeReverse

	// ModeForwardOrReverse is used by backends that can do either, or for which the actual mode depends on
	// configuration only known to an optional plugin. See RegisterModeResolver.
	ModeForwardOrReverse

	// ModeSymbolic manipulates expressions symbolically instead of propagating numbers.
	ModeSymbolic
)

// SupportsForward returns whether the mode can be used for forward (pushforward) computations.
func (m Mode) SupportsForward() bool {
	return m == ModeForward || m == ModeForwardOrReverse
}

// SupportsReverse returns whether the mode can be used for reverse (pullback) computations.
func (m Mode) SupportsReverse() bool {
	return m == ModeReverse || m == ModeForwardOrReverse
}
