// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package backends

import (
	"reflect"
	"sync"

	"k8s.io/klog/v2"
)

// modeResolvers maps the concrete type of a Backend to a function that refines its Mode.
var (
	modeResolversMu sync.RWMutex
	modeResolvers   = make(map[reflect.Type]func(Backend) Mode)
)

// RegisterModeResolver registers a function that resolves the precise Mode of backends of type B, overriding
// B.Mode() in ResolveMode.
//
// It's meant for optional plugins, that know more about an engine than its descriptor does (e.g., whether a
// backend configured for "either mode" actually runs forward or reverse). They should call it during
// initialization of their package. A later registration for the same type replaces the earlier one.
func RegisterModeResolver[B Backend](resolver func(B) Mode) {
	key := reflect.TypeFor[B]()
	modeResolversMu.Lock()
	defer modeResolversMu.Unlock()
	if _, found := modeResolvers[key]; found {
		klog.Warningf("mode resolver for backend type %s registered more than once, using the last one", key)
	}
	modeResolvers[key] = func(b Backend) Mode { return resolver(b.(B)) }
	klog.V(1).Infof("registered mode resolver for backend type %s", key)
}

// ResolveMode returns the Mode of the backend: the one given by a resolver registered for its concrete type
// (see RegisterModeResolver) if there is one, or backend.Mode() otherwise.
//
// It's a pure function: querying the same backend always returns the same Mode. A nil backend has
// ModeInvalid.
func ResolveMode(backend Backend) Mode {
	if backend == nil {
		return ModeInvalid
	}
	modeResolversMu.RLock()
	resolver, found := modeResolvers[reflect.TypeOf(backend)]
	modeResolversMu.RUnlock()
	if found {
		return resolver(backend)
	}
	return backend.Mode()
}
