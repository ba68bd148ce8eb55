// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jeremy Canales

package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"
)

// EnvSnapshot is a point-in-time capture of the ambient state the engine
// consults: the WP_ENV_* variables, the platform identifier and the user's
// home directory. It is taken once per read so that concurrent mutation of
// the process environment cannot produce a half-updated result.
//
// Port values are kept as raw strings; the environment builder parses them
// so that a malformed value is reported as a validation failure rather than
// a capture failure.
type EnvSnapshot struct {
	// Port overrides the development environment port. Env: WP_ENV_PORT.
	Port string `env:"WP_ENV_PORT"`

	// TestsPort overrides the tests environment port. Env: WP_ENV_TESTS_PORT.
	TestsPort string `env:"WP_ENV_TESTS_PORT"`

	// Home overrides the work directory root. Env: WP_ENV_HOME.
	Home string `env:"WP_ENV_HOME"`

	// Platform is the OS identifier (runtime.GOOS).
	Platform string `env:"-"`

	// HomeDirectory is the invoking user's home directory.
	HomeDirectory string `env:"-"`
}

// CaptureEnv takes the snapshot from the real process environment using the
// caarlos0/env field tags declared on [EnvSnapshot].
func CaptureEnv() (*EnvSnapshot, error) {
	snapshot := &EnvSnapshot{}
	if err := env.Parse(snapshot); err != nil {
		return nil, fmt.Errorf("error capturing environment variables: %w", err)
	}

	snapshot.Platform = runtime.GOOS

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("error resolving home directory: %w", err)
	}
	snapshot.HomeDirectory = home

	return snapshot, nil
}
