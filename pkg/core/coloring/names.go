// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package coloring

import (
	"strings"

	"github.com/pkg/errors"
)

// AlgorithmNames lists the names accepted by ByName.
var AlgorithmNames = []string{"none", "greedy", "greedy-largest-first"}

// ByName returns one of the stateless algorithms of this package by name, see AlgorithmNames.
func ByName(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return NoColoringAlgorithm{}, nil
	case "greedy":
		return GreedyColoringAlgorithm{Order: OrderNatural}, nil
	case "greedy-largest-first":
		return GreedyColoringAlgorithm{Order: OrderLargestFirst}, nil
	}
	return nil, errors.Errorf("unknown coloring algorithm %q, valid values are %q", name, AlgorithmNames)
}
