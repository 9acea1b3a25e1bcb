// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dense

import (
	"github.com/gomlx/adtypes/backends"
	"github.com/gomlx/adtypes/internal/parameters"
)

// Registered names of the reverse mode backends.
const (
	ReverseDiffName = "reversediff"
	ZygoteName      = "zygote"
	TrackerName     = "tracker"
	MooncakeName    = "mooncake"
	TapirName       = "tapir"
)

// ReverseDiff describes the ReverseDiff engine: reverse mode with a recorded tape.
type ReverseDiff struct {
	// Compile the tape: it's faster to re-run, but only valid if the function has no value dependent
	// control flow.
	Compile bool
}

// Name implements backends.Backend.
func (ReverseDiff) Name() string { return ReverseDiffName }

// Mode implements backends.Backend.
func (ReverseDiff) Mode() backends.Mode { return backends.ModeReverse }

// String implements backends.Backend.
func (b ReverseDiff) String() string {
	if !b.Compile {
		return display("AutoReverseDiff")
	}
	return display("AutoReverseDiff", option("compile", true))
}

// newReverseDiff accepts the option "compile".
func newReverseDiff(config string) (backends.Backend, error) {
	params := parameters.NewFromConfigString(config)
	compile, err := parameters.PopParamOr(params, "compile", false)
	if err != nil {
		return nil, err
	}
	if err = parameters.CheckAllConsumed(params, ReverseDiffName); err != nil {
		return nil, err
	}
	return ReverseDiff{Compile: compile}, nil
}

// Zygote describes the Zygote engine: source-to-source reverse mode. It doesn't support mutation, hence
// no in-place functions.
type Zygote struct{}

// Name implements backends.Backend.
func (Zygote) Name() string { return ZygoteName }

// Mode implements backends.Backend.
func (Zygote) Mode() backends.Mode { return backends.ModeReverse }

// String implements backends.Backend.
func (Zygote) String() string { return display("AutoZygote") }

// SupportsInPlace implements backends.InPlaceSupporter.
func (Zygote) SupportsInPlace() bool { return false }

var newZygote = noConfig(ZygoteName, Zygote{})

// Tracker describes the Tracker engine: reverse mode with tracked arrays. It doesn't support in-place
// functions.
type Tracker struct{}

// Name implements backends.Backend.
func (Tracker) Name() string { return TrackerName }

// Mode implements backends.Backend.
func (Tracker) Mode() backends.Mode { return backends.ModeReverse }

// String implements backends.Backend.
func (Tracker) String() string { return display("AutoTracker") }

// SupportsInPlace implements backends.InPlaceSupporter.
func (Tracker) SupportsInPlace() bool { return false }

var newTracker = noConfig(TrackerName, Tracker{})

// Mooncake describes the reverse mode of the Mooncake engine.
type Mooncake struct {
	Config MooncakeConfig
}

// Name implements backends.Backend.
func (Mooncake) Name() string { return MooncakeName }

// Mode implements backends.Backend.
func (Mooncake) Mode() backends.Mode { return backends.ModeReverse }

// String implements backends.Backend.
func (b Mooncake) String() string { return display("AutoMooncake", b.Config.options()...) }

// newMooncake accepts the options "debug" and "silence".
func newMooncake(config string) (backends.Backend, error) {
	params := parameters.NewFromConfigString(config)
	c, err := popMooncakeConfig(params)
	if err != nil {
		return nil, err
	}
	if err = parameters.CheckAllConsumed(params, MooncakeName); err != nil {
		return nil, err
	}
	return Mooncake{Config: c}, nil
}

// Tapir describes the Tapir engine, the predecessor of Mooncake.
type Tapir struct {
	// SafeMode enables runtime checks in the engine.
	SafeMode bool
}

// Name implements backends.Backend.
func (Tapir) Name() string { return TapirName }

// Mode implements backends.Backend.
func (Tapir) Mode() backends.Mode { return backends.ModeReverse }

// String implements backends.Backend.
func (b Tapir) String() string {
	if !b.SafeMode {
		return display("AutoTapir")
	}
	return display("AutoTapir", option("safemode", true))
}

// newTapir accepts the option "safemode".
func newTapir(config string) (backends.Backend, error) {
	params := parameters.NewFromConfigString(config)
	safeMode, err := parameters.PopParamOr(params, "safemode", false)
	if err != nil {
		return nil, err
	}
	if err = parameters.CheckAllConsumed(params, TapirName); err != nil {
		return nil, err
	}
	return Tapir{SafeMode: safeMode}, nil
}
