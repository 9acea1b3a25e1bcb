// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dense holds the descriptors of the dense AD engines: plain immutable values that name an
// engine and its configuration. They don't compute anything.
//
// Each descriptor is registered in package backends under its lower-case name, and can be created with a
// configuration string, e.g.:
//
//	backend, err := backends.NewWithConfig("forwarddiff:chunksize=4")
//
// Configuration that in some engines is encoded in types (chunk sizes, the compile flag of ReverseDiff) is
// given here as plain fields.
package dense

import (
	"fmt"
	"strings"

	"github.com/gomlx/adtypes/backends"
	"github.com/gomlx/adtypes/internal/parameters"
	"github.com/pkg/errors"
)

// DefaultBackend is the name of the backend used when no configuration is given. It's registered first.
const DefaultBackend = ForwardDiffName

func init() {
	// Order matters: the first registered is the default backend.
	backends.Register(ForwardDiffName, newForwardDiff)
	backends.Register(PolyesterForwardDiffName, newPolyesterForwardDiff)
	backends.Register(FiniteDiffName, newFiniteDiff)
	backends.Register(FiniteDifferencesName, newFiniteDifferences)
	backends.Register(GTPSAName, newGTPSA)
	backends.Register(MooncakeForwardName, newMooncakeForward)
	backends.Register(ReverseDiffName, newReverseDiff)
	backends.Register(ZygoteName, newZygote)
	backends.Register(TrackerName, newTracker)
	backends.Register(MooncakeName, newMooncake)
	backends.Register(TapirName, newTapir)
	backends.Register(EnzymeName, newEnzyme)
	backends.Register(ChainRulesName, newChainRules)
	backends.Register(DiffractorName, newDiffractor)
	backends.Register(SymbolicsName, newSymbolics)
	backends.Register(FastDifferentiationName, newFastDifferentiation)
	backends.Register(ReactantName, newReactant)
}

// display formats a descriptor as "TypeName(option1, option2, ...)".
func display(typeName string, options ...string) string {
	return typeName + "(" + strings.Join(options, ", ") + ")"
}

// option formats key=value, quoting strings. Keys are the configuration keys accepted by the constructors, so
// the options of a display string can be given back to backends.NewWithConfig.
func option(key string, value any) string {
	if s, ok := value.(string); ok {
		return fmt.Sprintf("%s=%q", key, s)
	}
	return fmt.Sprintf("%s=%v", key, value)
}

// noConfig is the constructor for backends without configuration.
func noConfig(name string, backend backends.Backend) backends.Constructor {
	return func(config string) (backends.Backend, error) {
		if err := parameters.CheckAllConsumed(parameters.NewFromConfigString(config), name); err != nil {
			return nil, err
		}
		return backend, nil
	}
}

// popOneOf pops a string parameter that must be one of the valid values (or empty).
func popOneOf[T ~string](params parameters.Params, key string, valid ...T) (T, error) {
	value, err := parameters.PopParamOr(params, key, "")
	if err != nil || value == "" {
		return "", err
	}
	value = strings.ToLower(value)
	for _, v := range valid {
		if string(v) == value {
			return v, nil
		}
	}
	return "", errors.Errorf("invalid value %s=%q, valid values are %q", key, value, valid)
}
