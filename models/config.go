package models

// Config is the fully-resolved result of reading one configuration file.
// It is immutable once constructed; a partial Config is never produced,
// reading either fully succeeds or fails with an error.
type Config struct {
	// Environments maps the environment name ("development", "tests") to
	// its resolved configuration. Both keys are always present.
	Environments map[string]*Environment `json:"environments"`

	// WorkDirectoryPath is the absolute directory where derived artifacts
	// (checkouts, extracted archives) are cached.
	WorkDirectoryPath string `json:"workDirectoryPath"`
}
