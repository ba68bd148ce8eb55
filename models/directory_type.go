package models

// DirectoryType is the heuristic classification of a working directory,
// used to seed implicit sources when no configuration file exists.
type DirectoryType string

const (
	DirectoryTypeCore   DirectoryType = "core"
	DirectoryTypePlugin DirectoryType = "plugin"
	DirectoryTypeTheme  DirectoryType = "theme"

	// DirectoryTypeNone means the directory matched no known project shape.
	DirectoryTypeNone DirectoryType = ""
)
