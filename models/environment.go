package models

// Environment names used as keys of [Config.Environments].
const (
	DevelopmentEnvironment = "development"
	TestsEnvironment       = "tests"
)

// Environment is one deployable configuration variant. The development and
// tests environments share the same document but are resolved independently.
type Environment struct {
	// Port is the TCP port the environment listens on. Always positive and
	// unique across the two environments.
	Port int `json:"port"`

	// CoreSource describes the core codebase, or nil when no core is
	// configured.
	CoreSource *Source `json:"coreSource"`

	// PluginSources lists plugin codebases in declaration order.
	// Duplicates are permitted.
	PluginSources []*Source `json:"pluginSources"`

	// ThemeSources lists theme codebases in declaration order.
	ThemeSources []*Source `json:"themeSources"`

	// Mappings holds user-defined named extra sources keyed by an arbitrary
	// unique string. Order is irrelevant.
	Mappings map[string]*Source `json:"mappings"`
}
