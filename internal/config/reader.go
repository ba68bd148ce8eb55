// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jeremy Canales

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jeremycanales01/gutenberg/internal/detect"
	"github.com/jeremycanales01/gutenberg/internal/logger"
	"github.com/jeremycanales01/gutenberg/internal/source"
	"github.com/jeremycanales01/gutenberg/internal/workdir"
	"github.com/jeremycanales01/gutenberg/models"
)

// Options holds the reader's injectable collaborators. Zero fields are
// filled with production defaults, so callers only set what they need to
// override.
type Options struct {
	// Env is the ambient state snapshot. Captured from the real process
	// environment when nil.
	Env *EnvSnapshot

	// Detector classifies the config directory when no file exists.
	Detector DirectoryTypeDetector

	// Files reads the raw configuration file.
	Files FileReader

	// Probe is the filesystem existence check used by the work-directory
	// resolver.
	Probe Prober

	// Logger receives debug output. Defaults to a no-op logger.
	Logger *logger.Logger
}

// Reader produces a [models.Config] from one configuration file. Construct
// it with [NewReader]; each Read builds an independent object graph, so a
// Reader may be reused.
type Reader struct {
	configPath string
	opts       Options
}

// NewReader constructs a Reader for the given configuration file path.
// Relative paths are resolved against the current working directory.
// Collaborators left zero in opts are filled field by field; a caller-
// provided Env snapshot is never merged with the captured one, so fields
// the caller left empty stay empty.
func NewReader(configPath string, opts Options) (*Reader, error) {
	if opts.Env == nil {
		snapshot, err := CaptureEnv()
		if err != nil {
			return nil, err
		}
		opts.Env = snapshot
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Detector == nil {
		opts.Detector = detect.NewDetector(opts.Logger)
	}
	if opts.Files == nil {
		opts.Files = osFileReader{}
	}
	if opts.Probe == nil {
		opts.Probe = osProber{}
	}

	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("error resolving config path %s: %w", configPath, err)
	}

	return &Reader{configPath: abs, opts: opts}, nil
}

// osFileReader is the production FileReader.
type osFileReader struct{}

func (osFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// osProber is the production Prober.
type osProber struct{}

func (osProber) Exists(path string) bool {
	return workdir.OSPathProbe(path)
}

// ReadConfig loads, validates and resolves the configuration file at
// configPath using the real process environment and filesystem. It is the
// production entry point; a missing file is treated as an empty document.
func ReadConfig(configPath string) (*models.Config, error) {
	reader, err := NewReader(configPath, Options{})
	if err != nil {
		return nil, err
	}

	return reader.Read()
}

// Read performs one parse/validate/resolve pass. It either returns a fully
// populated config or an error; no partial result is ever produced.
func (r *Reader) Read() (*models.Config, error) {
	log := r.opts.Logger
	snapshot := r.opts.Env
	configDir := filepath.Dir(r.configPath)

	workDirectoryPath := workdir.Resolve(snapshot.Home, snapshot.HomeDirectory, r.opts.Probe.Exists)
	log.Debug().
		Str("configPath", r.configPath).
		Str("workDirectoryPath", workDirectoryPath).
		Str("platform", snapshot.Platform).
		Msg("reading configuration")

	doc, exists, err := r.readDocument()
	if err != nil {
		return nil, err
	}

	if !exists {
		// No file and no explicit sources: seed implicit ones from the
		// directory type, detected once for both environments.
		if err := r.applyDetectedType(doc, configDir); err != nil {
			return nil, err
		}
	}

	resolver := source.NewResolver(workDirectoryPath, configDir, snapshot.HomeDirectory, log)
	builder := &environmentBuilder{resolver: resolver, env: snapshot, log: log}

	environments := make(map[string]*models.Environment, 2)
	for _, name := range []string{models.DevelopmentEnvironment, models.TestsEnvironment} {
		environment, err := builder.build(name, doc)
		if err != nil {
			return nil, err
		}
		environments[name] = environment
	}

	if environments[models.DevelopmentEnvironment].Port == environments[models.TestsEnvironment].Port {
		return nil, newValidationError("each port value must be unique")
	}

	return &models.Config{
		Environments:      environments,
		WorkDirectoryPath: workDirectoryPath,
	}, nil
}

// readDocument loads and validates the file. Not-found is not an error: it
// yields an empty document and exists=false. Any other read failure is
// fatal.
func (r *Reader) readDocument() (*document, bool, error) {
	data, err := r.opts.Files.ReadFile(r.configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.opts.Logger.Debug().Str("configPath", r.configPath).Msg("configuration file not found, using empty document")

			doc, parseErr := parseDocument([]byte("{}"), r.configPath)
			return doc, false, parseErr
		}

		return nil, false, &ValidationError{Message: fmt.Sprintf("could not read %s", r.configPath), Cause: err}
	}

	doc, err := parseDocument(data, r.configPath)
	if err != nil {
		return nil, false, err
	}

	return doc, true, nil
}

func (r *Reader) applyDetectedType(doc *document, configDir string) error {
	detected, err := r.opts.Detector.Detect(configDir)
	if err != nil {
		return fmt.Errorf("error detecting directory type: %w", err)
	}

	r.opts.Logger.Debug().Str("directoryType", string(detected)).Msg("detected directory type")

	switch detected {
	case models.DirectoryTypeCore:
		doc.root.Core = &coreValue{Value: "./"}
	case models.DirectoryTypePlugin:
		doc.root.Plugins = &[]string{"./"}
	case models.DirectoryTypeTheme:
		doc.root.Themes = &[]string{"./"}
	}

	return nil
}
