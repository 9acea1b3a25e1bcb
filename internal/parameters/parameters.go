// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package parameters parses backend configuration strings of the form "key1=value1,key2,key3=value3".
//
// Backend constructors pop the keys they know about and then call CheckAllConsumed, so that a typo in a
// configuration is reported instead of silently ignored.
package parameters

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Params holds the parsed key/value pairs of a configuration string.
// A key given without a value maps to the empty string.
type Params map[string]string

// NewFromConfigString parses the configuration string. Keys are lower-cased and spaces around keys
// and values are trimmed. Empty parts are ignored.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		params[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	return params
}

// Value types supported by GetParamOr and PopParamOr.
type Value interface {
	bool | int | float64 | string
}

// GetParamOr parses the parameter to the type of defaultValue if the key is present, or returns defaultValue
// if not.
//
// For bool values a key without a value is interpreted as true.
func GetParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, found := params[key]
	if !found {
		return defaultValue, nil
	}
	var parsed any
	switch any(defaultValue).(type) {
	case string:
		parsed = value
	case int:
		v, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue, errors.Wrapf(err, "failed to parse configuration %s=%q as int", key, value)
		}
		parsed = v
	case float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return defaultValue, errors.Wrapf(err, "failed to parse configuration %s=%q as float", key, value)
		}
		parsed = v
	case bool:
		switch strings.ToLower(value) {
		case "", "true", "1", "yes":
			parsed = true
		case "false", "0", "no":
			parsed = false
		default:
			return defaultValue, errors.Errorf("failed to parse configuration %s=%q as bool", key, value)
		}
	}
	return parsed.(T), nil
}

// PopParamOr is like GetParamOr, but it also deletes the key from params.
func PopParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// CheckAllConsumed returns an error listing any keys left in params, presumably unknown to the backend.
func CheckAllConsumed(params Params, backendName string) error {
	if len(params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return errors.Errorf("unknown configuration option(s) %q for backend %q", keys, backendName)
}
