// Package workdir computes the stable absolute directory under which the
// tool caches derived artifacts such as git checkouts and extracted
// archives.
package workdir

import (
	"os"
	"path/filepath"
)

const (
	// hiddenDirectoryName is the default cache directory name under the
	// user's home directory.
	hiddenDirectoryName = ".wp-env"

	// visibleDirectoryName is used instead when the home directory lives on
	// a snap-mounted filesystem; snap confinement cannot read dot-prefixed
	// directories.
	visibleDirectoryName = "wp-env"

	// snapMarkerPath existing is the signal that the host uses the snap
	// package manager.
	snapMarkerPath = "/snap"
)

// PathProbe reports whether a path exists. It is the single filesystem
// touch point of this package, injected so the resolution logic can be
// tested without real process state.
type PathProbe func(path string) bool

// OSPathProbe is the production [PathProbe], backed by os.Stat.
func OSPathProbe(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Resolve computes the work directory path.
//
// envHome, when non-empty, wins outright (the WP_ENV_HOME variable).
// Otherwise the cache lives in a fixed subdirectory of homeDir, named
// without the leading dot when the snap marker exists.
func Resolve(envHome, homeDir string, exists PathProbe) string {
	if envHome != "" {
		return envHome
	}

	name := hiddenDirectoryName
	if exists(snapMarkerPath) {
		name = visibleDirectoryName
	}

	return filepath.Join(homeDir, name)
}
