package workdir

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func probeReturning(exists bool) PathProbe {
	return func(string) bool { return exists }
}

// TestResolve_EnvHomeWins verifies that a non-empty WP_ENV_HOME value is
// returned untouched, without consulting the probe.
func TestResolve_EnvHomeWins(t *testing.T) {
	probeCalled := false
	probe := func(string) bool {
		probeCalled = true
		return true
	}

	got := Resolve("/custom/cache", "/home/tester", probe)

	assert.Equal(t, "/custom/cache", got)
	assert.False(t, probeCalled, "probe must not run when WP_ENV_HOME is set")
}

// TestResolve_DefaultHiddenDirectory verifies the dot-prefixed default under
// the home directory.
func TestResolve_DefaultHiddenDirectory(t *testing.T) {
	got := Resolve("", "/home/tester", probeReturning(false))

	assert.Equal(t, filepath.Join("/home/tester", ".wp-env"), got)
}

// TestResolve_SnapVisibleDirectory verifies that the leading dot is dropped
// when the snap marker exists.
func TestResolve_SnapVisibleDirectory(t *testing.T) {
	got := Resolve("", "/home/tester", probeReturning(true))

	assert.Equal(t, filepath.Join("/home/tester", "wp-env"), got)
}

// TestResolve_ProbeReceivesMarkerPath verifies that the probe is asked about
// the snap marker path specifically.
func TestResolve_ProbeReceivesMarkerPath(t *testing.T) {
	var probed string
	probe := func(path string) bool {
		probed = path
		return false
	}

	Resolve("", "/home/tester", probe)

	assert.Equal(t, "/snap", probed)
}

// TestOSPathProbe verifies the production probe against real paths.
func TestOSPathProbe(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, OSPathProbe(dir))
	assert.False(t, OSPathProbe(filepath.Join(dir, "missing")))
}
