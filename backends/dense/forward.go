// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dense

import (
	"fmt"

	"github.com/gomlx/adtypes/backends"
	"github.com/gomlx/adtypes/internal/parameters"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Registered names of the forward mode backends.
const (
	ForwardDiffName          = "forwarddiff"
	PolyesterForwardDiffName = "polyesterforwarddiff"
	FiniteDiffName           = "finitediff"
	FiniteDifferencesName    = "finitedifferences"
	GTPSAName                = "gtpsa"
	MooncakeForwardName      = "mooncakeforward"
)

// UniqueTagValue is the configuration value of "tag" that generates a new unique tag.
const UniqueTagValue = "unique"

// UniqueTag returns a new tag, different from any other, to prevent perturbation confusion between
// nested dual number computations.
func UniqueTag() string {
	return "tag-" + uuid.NewString()
}

// popChunkAndTag parses the "chunksize" and "tag" options shared by the dual number engines.
func popChunkAndTag(params parameters.Params) (chunkSize int, tag string, err error) {
	chunkSize, err = parameters.PopParamOr(params, "chunksize", 0)
	if err != nil {
		return
	}
	if chunkSize < 0 {
		err = errors.Errorf("chunksize must be >= 0 (0 for automatic), got %d", chunkSize)
		return
	}
	tag, err = parameters.PopParamOr(params, "tag", "")
	if tag == UniqueTagValue {
		tag = UniqueTag()
	}
	return
}

func chunkAndTagOptions(chunkSize int, tag string) (options []string) {
	if chunkSize > 0 {
		options = append(options, option("chunksize", chunkSize))
	}
	if tag != "" {
		options = append(options, option("tag", tag))
	}
	return
}

// ForwardDiff describes the ForwardDiff engine: forward mode with dual numbers.
type ForwardDiff struct {
	// ChunkSize is the number of partials propagated at once. 0 lets the engine choose.
	ChunkSize int

	// Tag identifies the dual numbers of this backend. Empty lets the engine choose.
	Tag string
}

// Name implements backends.Backend.
func (ForwardDiff) Name() string { return ForwardDiffName }

// Mode implements backends.Backend.
func (ForwardDiff) Mode() backends.Mode { return backends.ModeForward }

// String implements backends.Backend.
func (b ForwardDiff) String() string {
	return display("AutoForwardDiff", chunkAndTagOptions(b.ChunkSize, b.Tag)...)
}

// newForwardDiff accepts the options "chunksize" and "tag" ("tag=unique" generates a unique tag).
func newForwardDiff(config string) (backends.Backend, error) {
	params := parameters.NewFromConfigString(config)
	chunkSize, tag, err := popChunkAndTag(params)
	if err != nil {
		return nil, err
	}
	if err = parameters.CheckAllConsumed(params, ForwardDiffName); err != nil {
		return nil, err
	}
	return ForwardDiff{ChunkSize: chunkSize, Tag: tag}, nil
}

// PolyesterForwardDiff describes the multithreaded variant of ForwardDiff.
type PolyesterForwardDiff struct {
	ChunkSize int
	Tag       string
}

// Name implements backends.Backend.
func (PolyesterForwardDiff) Name() string { return PolyesterForwardDiffName }

// Mode implements backends.Backend.
func (PolyesterForwardDiff) Mode() backends.Mode { return backends.ModeForward }

// String implements backends.Backend.
func (b PolyesterForwardDiff) String() string {
	return display("AutoPolyesterForwardDiff", chunkAndTagOptions(b.ChunkSize, b.Tag)...)
}

func newPolyesterForwardDiff(config string) (backends.Backend, error) {
	params := parameters.NewFromConfigString(config)
	chunkSize, tag, err := popChunkAndTag(params)
	if err != nil {
		return nil, err
	}
	if err = parameters.CheckAllConsumed(params, PolyesterForwardDiffName); err != nil {
		return nil, err
	}
	return PolyesterForwardDiff{ChunkSize: chunkSize, Tag: tag}, nil
}

// FDType is a finite difference scheme.
type FDType string

// Finite difference schemes. The empty FDType selects the default of the field where it is used.
const (
	FDForward  FDType = "forward"
	FDCentral  FDType = "central"
	FDComplex  FDType = "complex"
	FDHCentral FDType = "hcentral"
)

// FiniteDiff describes the FiniteDiff engine: finite differences with configurable schemes.
type FiniteDiff struct {
	// FDType is the scheme for gradients and derivatives. Defaults to FDForward.
	FDType FDType

	// FDJType is the scheme for Jacobians. Defaults to FDType.
	FDJType FDType

	// FDHType is the scheme for Hessians. Defaults to FDHCentral.
	FDHType FDType

	// RelStep and AbsStep are the relative and absolute step sizes. 0 lets the engine choose.
	RelStep, AbsStep float64
}

// Name implements backends.Backend.
func (FiniteDiff) Name() string { return FiniteDiffName }

// Mode implements backends.Backend.
func (FiniteDiff) Mode() backends.Mode { return backends.ModeForward }

// Schemes returns the effective schemes for gradients, Jacobians and Hessians, with the defaults filled in.
func (b FiniteDiff) Schemes() (fdType, fdjType, fdhType FDType) {
	fdType, fdjType, fdhType = b.FDType, b.FDJType, b.FDHType
	if fdType == "" {
		fdType = FDForward
	}
	if fdjType == "" {
		fdjType = fdType
	}
	if fdhType == "" {
		fdhType = FDHCentral
	}
	return
}

// String implements backends.Backend.
func (b FiniteDiff) String() string {
	var options []string
	if b.FDType != "" {
		options = append(options, option("fdtype", string(b.FDType)))
	}
	if b.FDJType != "" {
		options = append(options, option("fdjtype", string(b.FDJType)))
	}
	if b.FDHType != "" {
		options = append(options, option("fdhtype", string(b.FDHType)))
	}
	if b.RelStep != 0 {
		options = append(options, option("relstep", b.RelStep))
	}
	if b.AbsStep != 0 {
		options = append(options, option("absstep", b.AbsStep))
	}
	return display("AutoFiniteDiff", options...)
}

func newFiniteDiff(config string) (backends.Backend, error) {
	params := parameters.NewFromConfigString(config)
	var b FiniteDiff
	var err error
	if b.FDType, err = popOneOf(params, "fdtype", FDForward, FDCentral, FDComplex); err != nil {
		return nil, err
	}
	if b.FDJType, err = popOneOf(params, "fdjtype", FDForward, FDCentral, FDComplex); err != nil {
		return nil, err
	}
	if b.FDHType, err = popOneOf(params, "fdhtype", FDHCentral, FDForward, FDCentral); err != nil {
		return nil, err
	}
	if b.RelStep, err = parameters.PopParamOr(params, "relstep", 0.0); err != nil {
		return nil, err
	}
	if b.AbsStep, err = parameters.PopParamOr(params, "absstep", 0.0); err != nil {
		return nil, err
	}
	if b.RelStep < 0 || b.AbsStep < 0 {
		return nil, errors.Errorf("relstep and absstep must be >= 0, got %g and %g", b.RelStep, b.AbsStep)
	}
	if err = parameters.CheckAllConsumed(params, FiniteDiffName); err != nil {
		return nil, err
	}
	return b, nil
}

// FDMethod describes a finite difference method of FiniteDifferences, like central_fdm(5, 1).
type FDMethod struct {
	// Kind is one of "central", "forward" or "backward".
	Kind string

	// Points is the number of grid points.
	Points int

	// Order of the derivative estimated.
	Order int
}

// DefaultFDMethod is the method used by FiniteDifferences when none is given.
var DefaultFDMethod = FDMethod{Kind: "central", Points: 5, Order: 1}

// String returns the method in the engine's notation, e.g. "central_fdm(5, 1)".
func (m FDMethod) String() string {
	return fmt.Sprintf("%s_fdm(%d, %d)", m.Kind, m.Points, m.Order)
}

// FiniteDifferences describes the FiniteDifferences engine.
type FiniteDifferences struct {
	// Method is the finite difference method. The zero value means DefaultFDMethod.
	Method FDMethod
}

// Name implements backends.Backend.
func (FiniteDifferences) Name() string { return FiniteDifferencesName }

// Mode implements backends.Backend.
func (FiniteDifferences) Mode() backends.Mode { return backends.ModeForward }

// EffectiveMethod returns the Method, or DefaultFDMethod if not set.
func (b FiniteDifferences) EffectiveMethod() FDMethod {
	if b.Method == (FDMethod{}) {
		return DefaultFDMethod
	}
	return b.Method
}

// String implements backends.Backend.
func (b FiniteDifferences) String() string {
	return display("AutoFiniteDifferences", "fdm="+b.EffectiveMethod().String())
}

// newFiniteDifferences accepts the options "fdm" (central, forward or backward), "points" and "order".
func newFiniteDifferences(config string) (backends.Backend, error) {
	params := parameters.NewFromConfigString(config)
	m := DefaultFDMethod
	var err error
	if m.Kind, err = parameters.PopParamOr(params, "fdm", m.Kind); err != nil {
		return nil, err
	}
	switch m.Kind {
	case "central", "forward", "backward":
	default:
		return nil, errors.Errorf("invalid fdm=%q, valid values are \"central\", \"forward\" or \"backward\"", m.Kind)
	}
	if m.Points, err = parameters.PopParamOr(params, "points", m.Points); err != nil {
		return nil, err
	}
	if m.Order, err = parameters.PopParamOr(params, "order", m.Order); err != nil {
		return nil, err
	}
	if m.Order < 1 || m.Points <= m.Order {
		return nil, errors.Errorf("finite difference method needs order >= 1 and points > order, got points=%d, order=%d",
			m.Points, m.Order)
	}
	if err = parameters.CheckAllConsumed(params, FiniteDifferencesName); err != nil {
		return nil, err
	}
	return FiniteDifferences{Method: m}, nil
}

// GTPSA describes the GTPSA engine: forward mode with truncated power series.
type GTPSA struct {
	// Descriptor of the truncated power series algebra. Empty lets the engine choose.
	Descriptor string
}

// Name implements backends.Backend.
func (GTPSA) Name() string { return GTPSAName }

// Mode implements backends.Backend.
func (GTPSA) Mode() backends.Mode { return backends.ModeForward }

// String implements backends.Backend.
func (b GTPSA) String() string {
	if b.Descriptor == "" {
		return display("AutoGTPSA")
	}
	return display("AutoGTPSA", option("descriptor", b.Descriptor))
}

func newGTPSA(config string) (backends.Backend, error) {
	params := parameters.NewFromConfigString(config)
	descriptor, err := parameters.PopParamOr(params, "descriptor", "")
	if err != nil {
		return nil, err
	}
	if err = parameters.CheckAllConsumed(params, GTPSAName); err != nil {
		return nil, err
	}
	return GTPSA{Descriptor: descriptor}, nil
}

// MooncakeConfig holds the configuration of the Mooncake engines.
type MooncakeConfig struct {
	Debug                bool
	SilenceDebugMessages bool
}

func (c MooncakeConfig) options() (options []string) {
	if c.Debug {
		options = append(options, option("debug", true))
	}
	if c.SilenceDebugMessages {
		options = append(options, option("silence", true))
	}
	return
}

func popMooncakeConfig(params parameters.Params) (c MooncakeConfig, err error) {
	if c.Debug, err = parameters.PopParamOr(params, "debug", false); err != nil {
		return
	}
	c.SilenceDebugMessages, err = parameters.PopParamOr(params, "silence", false)
	return
}

// MooncakeForward describes the forward mode of the Mooncake engine.
type MooncakeForward struct {
	Config MooncakeConfig
}

// Name implements backends.Backend.
func (MooncakeForward) Name() string { return MooncakeForwardName }

// Mode implements backends.Backend.
func (MooncakeForward) Mode() backends.Mode { return backends.ModeForward }

// String implements backends.Backend.
func (b MooncakeForward) String() string {
	return display("AutoMooncakeForward", b.Config.options()...)
}

// newMooncakeForward accepts the options "debug" and "silence".
func newMooncakeForward(config string) (backends.Backend, error) {
	params := parameters.NewFromConfigString(config)
	c, err := popMooncakeConfig(params)
	if err != nil {
		return nil, err
	}
	if err = parameters.CheckAllConsumed(params, MooncakeForwardName); err != nil {
		return nil, err
	}
	return MooncakeForward{Config: c}, nil
}
