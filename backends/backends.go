// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package backends defines the interface of an automatic differentiation (AD) backend descriptor, and the
// composition of backends into sparse differentiation strategies.
//
// A Backend here is only a descriptor: a plain, immutable value naming a differentiation engine and its
// configuration. It never computes derivatives itself. Generic differentiation code queries its Mode (see
// ResolveMode) to choose an algorithm and, if it is an AutoSparse, extracts its dense backend, sparsity
// detector and coloring algorithm to drive a compressed differentiation.
//
// Concrete descriptors register themselves with Register, so they can be created from configuration strings.
// The default set is in package github.com/gomlx/adtypes/backends/dense, and it can be included with:
//
//	import _ "github.com/gomlx/adtypes/backends/default"
package backends

import (
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Backend describes an AD engine and its configuration.
//
// Implementations should be comparable values (no slices or maps), so that two descriptors with the same
// configuration are equal with ==.
type Backend interface {
	// Name returns the short name of the backend, as registered. E.g.: "forwarddiff".
	Name() string

	// String returns a display representation of the backend and its non-default configuration.
	// E.g.: "AutoForwardDiff(chunksize=4)".
	String() string

	// Mode returns the default differentiation mode of the backend.
	//
	// Backends whose precise mode depends on optional engine state should return ModeForwardOrReverse, and let
	// an optional plugin refine it with RegisterModeResolver. Generic code should use ResolveMode instead.
	Mode() Mode
}

// Constructor takes a config string (optionally empty) and returns a Backend.
type Constructor func(config string) (Backend, error)

var (
	registryMu             sync.RWMutex
	registeredConstructors = make(map[string]Constructor)
	firstRegistered        string
)

// Register backend with the given name, and a constructor that takes as input a configuration string that is
// passed along to the backend constructor.
//
// The first backend registered is the default. To be safe, call Register during initialization of a package.
func Register(name string, constructor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if len(registeredConstructors) == 0 {
		firstRegistered = name
	}
	if _, found := registeredConstructors[name]; found {
		klog.Warningf("backend %q registered more than once, using the last registration", name)
	}
	registeredConstructors[name] = constructor
	klog.V(1).Infof("registered AD backend %q", name)
}

// List returns the sorted names of the registered backends.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registeredConstructors))
	for name := range registeredConstructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultConfig is the name of the default backend configuration to use if specified.
//
// See NewWithConfig for the format of the configuration string.
var DefaultConfig string

// ConfigEnvVar is the name of the environment variable with the default backend configuration to use:
// "ADTYPES_BACKEND".
//
// The format of config is "<backend_name>:<backend_configuration>".
// The "<backend_name>" is the name of a registered backend (e.g.: "forwarddiff") and
// "<backend_configuration>" is backend specific (e.g.: "chunksize=4").
const ConfigEnvVar = "ADTYPES_BACKEND"

// New returns a new default Backend.
//
// The default is:
//
// 1. The environment ConfigEnvVar (ADTYPES_BACKEND) is used as a configuration if defined.
// 2. Next the variable DefaultConfig is used as a configuration if defined.
// 3. The first registered backend is used with an empty configuration.
//
// It returns an error if no backend was registered.
func New() (Backend, error) {
	if config, found := os.LookupEnv(ConfigEnvVar); found {
		return NewWithConfig(config)
	}
	if DefaultConfig != "" {
		return NewWithConfig(DefaultConfig)
	}
	return NewWithConfig("")
}

// MustNew is like New, but panics on error.
func MustNew() Backend {
	return must.M1(New())
}

// NewWithConfig takes a configuration string formatted as "<backend_name>:<backend_configuration>".
//
// The "<backend_name>" is the name of a registered backend (e.g.: "forwarddiff") and "<backend_configuration>"
// is backend specific, usually a comma-separated list of "key=value" pairs (e.g.: "chunksize=4,tag=unique").
// The ":<backend_configuration>" part is optional, and an empty config selects the first registered backend.
func NewWithConfig(config string) (Backend, error) {
	registryMu.RLock()
	if len(registeredConstructors) == 0 {
		registryMu.RUnlock()
		return nil, errors.New(`no registered AD backends -- maybe import the default ones with ` +
			`import _ "github.com/gomlx/adtypes/backends/default"?`)
	}
	backendName, backendConfig, _ := strings.Cut(config, ":")
	backendName = strings.ToLower(strings.TrimSpace(backendName))
	if backendName == "" {
		backendName = firstRegistered
	}
	constructor, found := registeredConstructors[backendName]
	registryMu.RUnlock()
	if !found {
		return nil, errors.Errorf("can't find AD backend %q for configuration %q, registered backends are %q",
			backendName, config, List())
	}
	backend, err := constructor(backendConfig)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create AD backend %q with configuration %q", backendName, config)
	}
	return backend, nil
}

// MustNewWithConfig is like NewWithConfig, but panics on error.
func MustNewWithConfig(config string) Backend {
	return must.M1(NewWithConfig(config))
}
