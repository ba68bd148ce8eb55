// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jeremy Canales

package config

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/jeremycanales01/gutenberg/models"
)

// coreValue distinguishes an explicit `"core": null` (no core codebase)
// from an absent core field.
type coreValue struct {
	Value string
	Null  bool
}

// documentValues holds one layer of raw per-environment fields after shape
// validation. Pointer fields record presence: a nil pointer means the field
// was absent from that layer, so a lower-precedence layer may supply it.
type documentValues struct {
	Core     *coreValue
	Plugins  *[]string
	Themes   *[]string
	Port     *int
	Mappings *map[string]string
}

// document is the validated form of one configuration file: the root-level
// values, the root testsPort, and the per-environment override blocks.
type document struct {
	root      documentValues
	testsPort *int
	overrides map[string]documentValues
}

// parseDocument decodes and shape-checks the raw file content. A JSON
// syntax failure is reported against the file path; every field violation
// is reported against its dotted field path, first violation wins.
func parseDocument(data []byte, path string) (*document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid %s", path), Cause: err}
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, newValidationError("invalid %s: configuration must be a JSON object", path)
	}

	return validateDocument(obj)
}

// validateDocument walks the root fields in declaration order: core,
// plugins, themes, port, testsPort, mappings, then the env override blocks.
func validateDocument(obj map[string]any) (*document, error) {
	root, err := validateValues(obj, "")
	if err != nil {
		return nil, err
	}

	testsPort, err := validatePort(obj, "testsPort", "testsPort")
	if err != nil {
		return nil, err
	}

	root.Mappings, err = validateMappings(obj, "")
	if err != nil {
		return nil, err
	}

	overrides, err := validateOverrides(obj)
	if err != nil {
		return nil, err
	}

	return &document{root: root, testsPort: testsPort, overrides: overrides}, nil
}

// validateValues checks the core/plugins/themes/port fields of one object,
// in declaration order. Mappings are checked separately so the root-level
// testsPort field can keep its place between port and mappings. prefix
// scopes error paths for the nested override blocks ("env.development."
// etc.).
func validateValues(obj map[string]any, prefix string) (documentValues, error) {
	values := documentValues{}

	if raw, ok := obj["core"]; ok {
		switch v := raw.(type) {
		case nil:
			values.Core = &coreValue{Null: true}
		case string:
			values.Core = &coreValue{Value: v}
		default:
			return values, newValidationError("%score must be null or a string", prefix)
		}
	}

	for _, field := range []string{"plugins", "themes"} {
		raw, ok := obj[field]
		if !ok {
			continue
		}

		list, err := stringSlice(raw)
		if err != nil {
			return values, newValidationError("%s%s must be an array of strings", prefix, field)
		}

		if field == "plugins" {
			values.Plugins = &list
		} else {
			values.Themes = &list
		}
	}

	port, err := validatePort(obj, "port", prefix+"port")
	if err != nil {
		return values, err
	}
	values.Port = port

	return values, nil
}

func validateMappings(obj map[string]any, prefix string) (*map[string]string, error) {
	raw, ok := obj["mappings"]
	if !ok {
		return nil, nil
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, newValidationError("%smappings must be an object", prefix)
	}

	mappings := make(map[string]string, len(m))
	for _, key := range sortedKeys(m) {
		s, ok := m[key].(string)
		if !ok {
			return nil, newValidationError("%smappings.%s should be a string", prefix, key)
		}
		mappings[key] = s
	}

	return &mappings, nil
}

func validateOverrides(obj map[string]any) (map[string]documentValues, error) {
	overrides := map[string]documentValues{}

	raw, ok := obj["env"]
	if !ok {
		return overrides, nil
	}

	envObj, ok := raw.(map[string]any)
	if !ok {
		return nil, newValidationError("env must be an object")
	}

	for _, name := range []string{models.DevelopmentEnvironment, models.TestsEnvironment} {
		rawBlock, ok := envObj[name]
		if !ok {
			continue
		}

		block, ok := rawBlock.(map[string]any)
		if !ok {
			return nil, newValidationError("env.%s must be an object", name)
		}

		values, err := validateValues(block, "env."+name+".")
		if err != nil {
			return nil, err
		}

		values.Mappings, err = validateMappings(block, "env."+name+".")
		if err != nil {
			return nil, err
		}
		overrides[name] = values
	}

	return overrides, nil
}

// validatePort accepts a JSON number only when it is a positive integer.
// JSON numbers decode as float64, so integrality is checked explicitly.
func validatePort(obj map[string]any, field, path string) (*int, error) {
	raw, ok := obj[field]
	if !ok {
		return nil, nil
	}

	f, ok := raw.(float64)
	if !ok || f != math.Trunc(f) {
		return nil, newValidationError("%s must be an integer", path)
	}
	if f < 1 {
		return nil, newValidationError("%s must be a positive integer", path)
	}

	port := int(f)

	return &port, nil
}

func stringSlice(raw any) ([]string, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("not an array")
	}

	list := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("non-string element")
		}
		list = append(list, s)
	}

	return list, nil
}

// sortedKeys makes fail-fast mapping validation deterministic despite Go's
// randomized map iteration order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
