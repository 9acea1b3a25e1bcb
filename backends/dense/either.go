// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dense

import (
	"github.com/gomlx/adtypes/backends"
	"github.com/gomlx/adtypes/internal/parameters"
	"github.com/pkg/errors"
)

// Registered names of the backends that may run in either mode.
const (
	EnzymeName     = "enzyme"
	ChainRulesName = "chainrules"
	DiffractorName = "diffractor"
	ReactantName   = "reactant"
)

// EnzymeMode is the mode the Enzyme engine is configured to run in.
type EnzymeMode string

// Enzyme engine modes. The empty EnzymeMode leaves the choice to the engine, per operator.
const (
	EnzymeForward EnzymeMode = "forward"
	EnzymeReverse EnzymeMode = "reverse"
)

// EnzymeAnnotation tells Enzyme how to treat the function being differentiated.
type EnzymeAnnotation string

// Enzyme function annotations. The empty EnzymeAnnotation leaves it to the engine.
const (
	EnzymeConst      EnzymeAnnotation = "const"
	EnzymeDuplicated EnzymeAnnotation = "duplicated"
)

// Enzyme describes the Enzyme engine, which differentiates compiler IR in forward or reverse mode.
//
// Its Mode is always ModeForwardOrReverse: which mode is actually used is engine configuration that only the
// optional package github.com/gomlx/adtypes/backends/dense/enzymeext resolves.
type Enzyme struct {
	// EngineMode is the engine's mode configuration, opaque to this package.
	EngineMode EnzymeMode

	// FunctionAnnotation for the differentiated function.
	FunctionAnnotation EnzymeAnnotation
}

// Name implements backends.Backend.
func (Enzyme) Name() string { return EnzymeName }

// Mode implements backends.Backend. It is a conservative default, see RegisterModeResolver.
func (Enzyme) Mode() backends.Mode { return backends.ModeForwardOrReverse }

// String implements backends.Backend.
func (b Enzyme) String() string {
	var options []string
	if b.EngineMode != "" {
		options = append(options, option("mode", string(b.EngineMode)))
	}
	if b.FunctionAnnotation != "" {
		options = append(options, option("annotation", string(b.FunctionAnnotation)))
	}
	return display("AutoEnzyme", options...)
}

// newEnzyme accepts the options "mode" (forward or reverse) and "annotation" (const or duplicated).
func newEnzyme(config string) (backends.Backend, error) {
	params := parameters.NewFromConfigString(config)
	var b Enzyme
	var err error
	if b.EngineMode, err = popOneOf(params, "mode", EnzymeForward, EnzymeReverse); err != nil {
		return nil, err
	}
	if b.FunctionAnnotation, err = popOneOf(params, "annotation", EnzymeConst, EnzymeDuplicated); err != nil {
		return nil, err
	}
	if err = parameters.CheckAllConsumed(params, EnzymeName); err != nil {
		return nil, err
	}
	return b, nil
}

// RuleConfig describes the capabilities of the AD system behind ChainRules.
type RuleConfig struct {
	// Name of the rule configuration, for display only.
	Name string

	HasForwardsMode, HasReverseMode bool
}

// ChainRules describes an AD system driven by ChainRules rules.
//
// Its Mode is always ModeForwardOrReverse: the optional package
// github.com/gomlx/adtypes/backends/dense/chainrulesext resolves it from the RuleConfig.
type ChainRules struct {
	RuleConfig RuleConfig
}

// Name implements backends.Backend.
func (ChainRules) Name() string { return ChainRulesName }

// Mode implements backends.Backend. It is a conservative default, see RegisterModeResolver.
func (ChainRules) Mode() backends.Mode { return backends.ModeForwardOrReverse }

// String implements backends.Backend.
func (b ChainRules) String() string {
	var options []string
	if b.RuleConfig.Name != "" {
		options = append(options, option("ruleconfig", b.RuleConfig.Name))
	}
	if b.RuleConfig.HasForwardsMode {
		options = append(options, option("forward", true))
	}
	if b.RuleConfig.HasReverseMode {
		options = append(options, option("reverse", true))
	}
	return display("AutoChainRules", options...)
}

// newChainRules accepts the options "ruleconfig" (a name), "forward" and "reverse".
func newChainRules(config string) (backends.Backend, error) {
	params := parameters.NewFromConfigString(config)
	var rc RuleConfig
	var err error
	if rc.Name, err = parameters.PopParamOr(params, "ruleconfig", ""); err != nil {
		return nil, err
	}
	if rc.HasForwardsMode, err = parameters.PopParamOr(params, "forward", false); err != nil {
		return nil, err
	}
	if rc.HasReverseMode, err = parameters.PopParamOr(params, "reverse", false); err != nil {
		return nil, err
	}
	if err = parameters.CheckAllConsumed(params, ChainRulesName); err != nil {
		return nil, err
	}
	return ChainRules{RuleConfig: rc}, nil
}

// Diffractor describes the Diffractor engine, which supports both modes.
type Diffractor struct{}

// Name implements backends.Backend.
func (Diffractor) Name() string { return DiffractorName }

// Mode implements backends.Backend.
func (Diffractor) Mode() backends.Mode { return backends.ModeForwardOrReverse }

// String implements backends.Backend.
func (Diffractor) String() string { return display("AutoDiffractor") }

var newDiffractor = noConfig(DiffractorName, Diffractor{})

// Reactant describes the Reactant compiler, which compiles the differentiation done by an inner backend.
// Its mode is the one of the inner backend.
type Reactant struct {
	Inner backends.Backend
}

// Name implements backends.Backend.
func (Reactant) Name() string { return ReactantName }

// Mode implements backends.Backend.
func (b Reactant) Mode() backends.Mode {
	if b.Inner == nil {
		return backends.ResolveMode(Enzyme{})
	}
	return backends.ResolveMode(b.Inner)
}

// String implements backends.Backend.
func (b Reactant) String() string {
	if b.Inner == nil {
		return display("AutoReactant")
	}
	return display("AutoReactant", "mode="+b.Inner.String())
}

// SupportsInPlace implements backends.InPlaceSupporter: compiled functions can't mutate their inputs.
func (Reactant) SupportsInPlace() bool { return false }

// newReactant takes as configuration the configuration of its inner backend, by default "enzyme".
// E.g.: "reactant:enzyme:mode=reverse".
func newReactant(config string) (backends.Backend, error) {
	if config == "" {
		config = EnzymeName
	}
	inner, err := backends.NewWithConfig(config)
	if err != nil {
		return nil, errors.WithMessage(err, "creating inner backend of reactant")
	}
	return Reactant{Inner: inner}, nil
}
