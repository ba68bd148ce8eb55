// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jeremy Canales

package config

import (
	"sort"
	"strconv"

	"github.com/jeremycanales01/gutenberg/internal/logger"
	"github.com/jeremycanales01/gutenberg/internal/source"
	"github.com/jeremycanales01/gutenberg/models"
)

// Default ports for the two environments when neither the document nor the
// WP_ENV_PORT / WP_ENV_TESTS_PORT variables say otherwise.
const (
	DefaultDevelopmentPort = 8888
	DefaultTestsPort       = 8889
)

// environmentBuilder assembles one [models.Environment] from the validated
// document, the source resolver and the environment snapshot.
type environmentBuilder struct {
	resolver *source.Resolver
	env      *EnvSnapshot
	log      *logger.Logger
}

// mergeValues layers an override block over base values. Semantics are full
// per-field replacement: a field present in override replaces the base value
// entirely (an explicit empty plugins array removes the root plugins, and a
// present mappings object is never merged element-wise with the root one).
func mergeValues(override, base documentValues) documentValues {
	merged := override

	if merged.Core == nil {
		merged.Core = base.Core
	}
	if merged.Plugins == nil {
		merged.Plugins = base.Plugins
	}
	if merged.Themes == nil {
		merged.Themes = base.Themes
	}
	if merged.Port == nil {
		merged.Port = base.Port
	}
	if merged.Mappings == nil {
		merged.Mappings = base.Mappings
	}

	return merged
}

// build resolves one environment. The same document may legally produce
// different environments because the override blocks and port variables
// differ; sources are therefore resolved independently per environment.
func (b *environmentBuilder) build(name string, doc *document) (*models.Environment, error) {
	base := doc.root
	if name == models.TestsEnvironment {
		// The root "port" field seeds development only; tests is seeded by
		// "testsPort" alone and otherwise falls back to its own default.
		base.Port = doc.testsPort
	}

	merged := mergeValues(doc.overrides[name], base)

	port, err := b.resolvePort(name, merged.Port)
	if err != nil {
		return nil, err
	}

	environment := &models.Environment{
		Port:          port,
		PluginSources: []*models.Source{},
		ThemeSources:  []*models.Source{},
		Mappings:      map[string]*models.Source{},
	}

	if merged.Core != nil && !merged.Core.Null {
		src, err := b.resolver.Resolve(merged.Core.Value, source.ResolveOptions{AddTestsPath: true})
		if err != nil {
			// Cause keeps the resolver sentinel reachable via errors.Is.
			return nil, &ValidationError{Cause: err}
		}
		environment.CoreSource = src
	}

	if merged.Plugins != nil {
		for _, descriptor := range *merged.Plugins {
			src, err := b.resolver.Resolve(descriptor, source.ResolveOptions{})
			if err != nil {
				return nil, &ValidationError{Cause: err}
			}
			environment.PluginSources = append(environment.PluginSources, src)
		}
	}

	if merged.Themes != nil {
		for _, descriptor := range *merged.Themes {
			src, err := b.resolver.Resolve(descriptor, source.ResolveOptions{})
			if err != nil {
				return nil, &ValidationError{Cause: err}
			}
			environment.ThemeSources = append(environment.ThemeSources, src)
		}
	}

	if merged.Mappings != nil {
		keys := make([]string, 0, len(*merged.Mappings))
		for key := range *merged.Mappings {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			src, err := b.resolver.Resolve((*merged.Mappings)[key], source.ResolveOptions{})
			if err != nil {
				return nil, &ValidationError{Message: "mappings." + key, Cause: err}
			}
			environment.Mappings[key] = src
		}
	}

	b.log.Debug().
		Str("environment", name).
		Int("port", environment.Port).
		Int("plugins", len(environment.PluginSources)).
		Int("themes", len(environment.ThemeSources)).
		Msg("environment assembled")

	return environment, nil
}

// resolvePort applies port precedence: environment variable, then
// override/root config value, then the environment default. A variable that
// does not parse as an integer fails immediately, even when a config value
// would otherwise win.
func (b *environmentBuilder) resolvePort(name string, configPort *int) (int, error) {
	varName, varValue := "WP_ENV_PORT", b.env.Port
	defaultPort := DefaultDevelopmentPort
	if name == models.TestsEnvironment {
		varName, varValue = "WP_ENV_TESTS_PORT", b.env.TestsPort
		defaultPort = DefaultTestsPort
	}

	if varValue != "" {
		port, err := strconv.Atoi(varValue)
		if err != nil {
			return 0, newValidationError("invalid environment variable: %s must be a number", varName)
		}
		return port, nil
	}

	if configPort != nil {
		return *configPort, nil
	}

	return defaultPort, nil
}
