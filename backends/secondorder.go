// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package backends

import (
	"fmt"

	"github.com/gomlx/exceptions"
)

// SecondOrder combines two backends for second order derivatives (Hessians, Hessian-vector products):
// the Outer backend differentiates the result of the Inner one. A common combination is forward over reverse.
type SecondOrder struct {
	Outer, Inner Backend
}

var (
	_ Backend          = SecondOrder{}
	_ InPlaceSupporter = SecondOrder{}
)

// NewSecondOrder returns the composition of outer over inner. It panics if either is nil.
func NewSecondOrder(outer, inner Backend) SecondOrder {
	if outer == nil || inner == nil {
		exceptions.Panicf("NewSecondOrder requires both outer and inner backends, got outer=%v, inner=%v", outer, inner)
	}
	return SecondOrder{Outer: outer, Inner: inner}
}

// Name implements Backend.
func (s SecondOrder) Name() string { return "secondorder" }

// String implements Backend.
func (s SecondOrder) String() string {
	return fmt.Sprintf("SecondOrder(%s, %s)", s.Outer, s.Inner)
}

// Mode implements Backend: it is the resolved mode of the Outer backend.
func (s SecondOrder) Mode() Mode { return ResolveMode(s.Outer) }

// SupportsInPlace implements InPlaceSupporter: both backends must support it.
func (s SecondOrder) SupportsInPlace() bool {
	return SupportsInPlace(s.Outer) && SupportsInPlace(s.Inner)
}
