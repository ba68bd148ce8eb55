package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTestDocument(t *testing.T, body string) (*document, error) {
	t.Helper()
	return parseDocument([]byte(body), "/projects/site/.wp-env.json")
}

// ── syntax and document shape ─────────────────────────────────────────────────

func TestParseDocument_InvalidJSON(t *testing.T) {
	doc, err := parseTestDocument(t, `{ this is not json }`)

	require.Error(t, err)
	assert.Nil(t, doc)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "invalid /projects/site/.wp-env.json")
}

func TestParseDocument_NotAnObject(t *testing.T) {
	doc, err := parseTestDocument(t, `[1, 2, 3]`)

	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "must be a JSON object")
}

func TestParseDocument_EmptyObject(t *testing.T) {
	doc, err := parseTestDocument(t, `{}`)

	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Nil(t, doc.root.Core)
	assert.Nil(t, doc.root.Plugins)
	assert.Nil(t, doc.root.Themes)
	assert.Nil(t, doc.root.Port)
	assert.Nil(t, doc.root.Mappings)
	assert.Nil(t, doc.testsPort)
	assert.Empty(t, doc.overrides)
}

// ── core ──────────────────────────────────────────────────────────────────────

func TestParseDocument_CoreString(t *testing.T) {
	doc, err := parseTestDocument(t, `{"core": "./wordpress"}`)

	require.NoError(t, err)
	require.NotNil(t, doc.root.Core)
	assert.Equal(t, "./wordpress", doc.root.Core.Value)
	assert.False(t, doc.root.Core.Null)
}

func TestParseDocument_CoreExplicitNull(t *testing.T) {
	doc, err := parseTestDocument(t, `{"core": null}`)

	require.NoError(t, err)
	require.NotNil(t, doc.root.Core)
	assert.True(t, doc.root.Core.Null)
}

func TestParseDocument_CoreWrongType(t *testing.T) {
	_, err := parseTestDocument(t, `{"core": 123}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "core must be null or a string")
}

// ── plugins and themes ────────────────────────────────────────────────────────

func TestParseDocument_Plugins(t *testing.T) {
	doc, err := parseTestDocument(t, `{"plugins": ["./a", "WordPress/gutenberg"]}`)

	require.NoError(t, err)
	require.NotNil(t, doc.root.Plugins)
	assert.Equal(t, []string{"./a", "WordPress/gutenberg"}, *doc.root.Plugins)
}

func TestParseDocument_PluginsMixedTypes(t *testing.T) {
	_, err := parseTestDocument(t, `{"plugins": ["test", 123]}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "plugins must be an array of strings")
}

func TestParseDocument_PluginsNotAnArray(t *testing.T) {
	_, err := parseTestDocument(t, `{"plugins": "./a"}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "plugins must be an array of strings")
}

func TestParseDocument_ThemesMixedTypes(t *testing.T) {
	_, err := parseTestDocument(t, `{"themes": [true]}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "themes must be an array of strings")
}

// ── ports ─────────────────────────────────────────────────────────────────────

func TestParseDocument_Ports(t *testing.T) {
	doc, err := parseTestDocument(t, `{"port": 1000, "testsPort": 2000}`)

	require.NoError(t, err)
	require.NotNil(t, doc.root.Port)
	assert.Equal(t, 1000, *doc.root.Port)
	require.NotNil(t, doc.testsPort)
	assert.Equal(t, 2000, *doc.testsPort)
}

func TestParseDocument_PortWrongType(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string port", `{"port": "8888"}`, "port must be an integer"},
		{"fractional port", `{"port": 88.8}`, "port must be an integer"},
		{"negative port", `{"port": -1}`, "port must be a positive integer"},
		{"string testsPort", `{"testsPort": []}`, "testsPort must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTestDocument(t, tt.body)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// TestParseDocument_TestsPortCheckedBeforeMappings verifies field-declaration
// order for fail-fast reporting: a bad testsPort wins over a bad mappings
// block in the same document.
func TestParseDocument_TestsPortCheckedBeforeMappings(t *testing.T) {
	_, err := parseTestDocument(t, `{"testsPort": "nope", "mappings": "also bad"}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "testsPort must be an integer")
	assert.NotContains(t, err.Error(), "mappings")
}

// ── mappings ──────────────────────────────────────────────────────────────────

func TestParseDocument_Mappings(t *testing.T) {
	doc, err := parseTestDocument(t, `{"mappings": {"test": "./relative", "test2": "WordPress/gutenberg#master"}}`)

	require.NoError(t, err)
	require.NotNil(t, doc.root.Mappings)
	assert.Equal(t, map[string]string{
		"test":  "./relative",
		"test2": "WordPress/gutenberg#master",
	}, *doc.root.Mappings)
}

func TestParseDocument_MappingsEmpty(t *testing.T) {
	doc, err := parseTestDocument(t, `{"mappings": {}}`)

	require.NoError(t, err)
	require.NotNil(t, doc.root.Mappings)
	assert.Empty(t, *doc.root.Mappings)
}

func TestParseDocument_MappingsNotAnObject(t *testing.T) {
	_, err := parseTestDocument(t, `{"mappings": "not object"}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mappings must be an object")
}

func TestParseDocument_MappingsNullValue(t *testing.T) {
	_, err := parseTestDocument(t, `{"mappings": {"test": null}}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mappings.test should be a string")
}

// TestParseDocument_MappingsFirstViolationDeterministic verifies that with
// several bad values the alphabetically first key is reported, regardless of
// map iteration order.
func TestParseDocument_MappingsFirstViolationDeterministic(t *testing.T) {
	_, err := parseTestDocument(t, `{"mappings": {"zeta": 1, "alpha": 2}}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mappings.alpha should be a string")
}

// ── env override blocks ───────────────────────────────────────────────────────

func TestParseDocument_EnvOverrides(t *testing.T) {
	doc, err := parseTestDocument(t, `{
		"env": {
			"development": {"port": 1234},
			"tests": {"core": null, "plugins": []}
		}
	}`)

	require.NoError(t, err)

	dev := doc.overrides["development"]
	require.NotNil(t, dev.Port)
	assert.Equal(t, 1234, *dev.Port)

	tst := doc.overrides["tests"]
	require.NotNil(t, tst.Core)
	assert.True(t, tst.Core.Null)
	require.NotNil(t, tst.Plugins)
	assert.Empty(t, *tst.Plugins)
}

func TestParseDocument_EnvNotAnObject(t *testing.T) {
	_, err := parseTestDocument(t, `{"env": []}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env must be an object")
}

func TestParseDocument_EnvBlockNotAnObject(t *testing.T) {
	_, err := parseTestDocument(t, `{"env": {"tests": 5}}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env.tests must be an object")
}

// TestParseDocument_NestedFieldPath verifies that override violations carry
// the dotted field path.
func TestParseDocument_NestedFieldPath(t *testing.T) {
	_, err := parseTestDocument(t, `{"env": {"tests": {"port": "nope"}}}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env.tests.port must be an integer")
}

// TestParseDocument_UnknownFieldsIgnored verifies that unrecognized fields
// do not fail validation.
func TestParseDocument_UnknownFieldsIgnored(t *testing.T) {
	doc, err := parseTestDocument(t, `{"phpVersion": "8.0", "port": 1000}`)

	require.NoError(t, err)
	require.NotNil(t, doc.root.Port)
	assert.Equal(t, 1000, *doc.root.Port)
}
