// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package _default includes the default backends, namely the dense descriptors and the optional mode
// plugins of Enzyme and ChainRules.
//
// To use it simply include:
//
//	import _ "github.com/gomlx/adtypes/backends/default"
package _default

import (
	_ "github.com/gomlx/adtypes/backends/dense"
	_ "github.com/gomlx/adtypes/backends/dense/chainrulesext"
	_ "github.com/gomlx/adtypes/backends/dense/enzymeext"
)
