package main

import (
	"flag"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// defaultConfigPath is used when neither a flag nor an environment variable
// names the configuration file.
const defaultConfigPath = ".wp-env.json"

// cliConfig holds the tool's own settings, as opposed to the environment
// description read from the configuration file. Values are resolved with
// flag > environment variable > default precedence.
type cliConfig struct {
	// ConfigPath is the configuration file to read.
	// Env: WP_ENV_CONFIG_PATH; flag: -c / -config.
	ConfigPath string `env:"WP_ENV_CONFIG_PATH"`

	// Debug enables debug logging.
	// Env: WP_ENV_DEBUG; flag: -debug.
	Debug bool `env:"WP_ENV_DEBUG"`
}

type cliConfigBuilder struct {
	configs []*cliConfig
	err     error
}

func newCLIConfigBuilder() *cliConfigBuilder {
	return &cliConfigBuilder{
		configs: make([]*cliConfig, 0, 2),
	}
}

// build merges the collected layers; earlier layers win for non-zero
// fields, so appending flags before env gives flags precedence.
func (b *cliConfigBuilder) build() (*cliConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building cli config: %w", b.err)
	}

	cfg := new(cliConfig)
	for _, layer := range b.configs {
		if err := mergo.Merge(cfg, layer); err != nil {
			return nil, fmt.Errorf("error merging cli configs: %w", err)
		}
	}

	if cfg.ConfigPath == "" {
		cfg.ConfigPath = defaultConfigPath
	}

	return cfg, nil
}

func (b *cliConfigBuilder) withFlags() *cliConfigBuilder {
	var configPath string
	var debug bool

	flag.StringVar(&configPath, "c", "", "Configuration file path")
	flag.StringVar(&configPath, "config", "", "Configuration file path (alias)")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")

	flag.Parse()

	b.configs = append(b.configs, &cliConfig{
		ConfigPath: configPath,
		Debug:      debug,
	})

	return b
}

func (b *cliConfigBuilder) withEnv() *cliConfigBuilder {
	envCfg := &cliConfig{}
	if err := env.Parse(envCfg); err != nil {
		b.err = fmt.Errorf("error getting env cli configs: %w", err)
		return b
	}

	b.configs = append(b.configs, envCfg)

	return b
}

// getCLIConfig resolves the CLI's own settings from flags and environment
// variables.
func getCLIConfig() (*cliConfig, error) {
	return newCLIConfigBuilder().
		withFlags().
		withEnv().
		build()
}
