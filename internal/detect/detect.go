// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jeremy Canales

// Package detect classifies a working directory as a WordPress core
// checkout, a plugin, a theme, or none of those. The result seeds implicit
// sources when no configuration file exists.
package detect

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeremycanales01/gutenberg/internal/logger"
	"github.com/jeremycanales01/gutenberg/models"
)

// Headers looked up in the first chunk of candidate files. WordPress
// declares plugins and themes through file-comment headers.
var (
	pluginHeader = []byte("Plugin Name:")
	themeHeader  = []byte("Theme Name:")
)

// headerScanLimit bounds how much of a file is read when searching for a
// header; WordPress itself only honors headers near the top of the file.
const headerScanLimit = 8 * 1024

// Detector inspects a directory on disk. It satisfies the engine's
// DirectoryTypeDetector collaborator interface.
type Detector struct {
	log *logger.Logger
}

// NewDetector constructs a Detector. A nil log falls back to a no-op logger.
func NewDetector(log *logger.Logger) *Detector {
	if log == nil {
		log = logger.Nop()
	}

	return &Detector{log: log}
}

// Detect classifies path. Checks run in order: core (a wp-includes
// directory with version.php), plugin (a top-level PHP file with a plugin
// header), theme (a style.css with a theme header). Directories matching
// none of those yield [models.DirectoryTypeNone] without error.
func (d *Detector) Detect(path string) (models.DirectoryType, error) {
	if isCoreDirectory(path) {
		d.log.Debug().Str("path", path).Msg("detected core directory")
		return models.DirectoryTypeCore, nil
	}

	isPlugin, err := isPluginDirectory(path)
	if err != nil {
		return models.DirectoryTypeNone, fmt.Errorf("error inspecting directory %s: %w", path, err)
	}
	if isPlugin {
		d.log.Debug().Str("path", path).Msg("detected plugin directory")
		return models.DirectoryTypePlugin, nil
	}

	if isThemeDirectory(path) {
		d.log.Debug().Str("path", path).Msg("detected theme directory")
		return models.DirectoryTypeTheme, nil
	}

	d.log.Debug().Str("path", path).Msg("directory type not recognized")

	return models.DirectoryTypeNone, nil
}

func isCoreDirectory(path string) bool {
	info, err := os.Stat(filepath.Join(path, "wp-includes", "version.php"))
	return err == nil && !info.IsDir()
}

func isPluginDirectory(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".php") {
			continue
		}

		if fileContainsHeader(filepath.Join(path, entry.Name()), pluginHeader) {
			return true, nil
		}
	}

	return false, nil
}

func isThemeDirectory(path string) bool {
	return fileContainsHeader(filepath.Join(path, "style.css"), themeHeader)
}

// fileContainsHeader reports whether the first headerScanLimit bytes of the
// file contain header. Unreadable files are treated as non-matching.
func fileContainsHeader(path string, header []byte) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, headerScanLimit)
	n, _ := f.Read(buf)

	return bytes.Contains(buf[:n], header)
}
