package config

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_config.go -package=mock

import "github.com/jeremycanales01/gutenberg/models"

// DirectoryTypeDetector classifies the directory containing the
// configuration file. It is consulted once per read, and only when the
// configuration file does not exist; its result seeds implicit single-entry
// source lists.
type DirectoryTypeDetector interface {
	Detect(path string) (models.DirectoryType, error)
}

// FileReader reads the raw configuration file. It is the reader's only
// suspension point and is injected so the engine can be tested without
// touching the filesystem.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// Prober is the filesystem existence check consumed by the work-directory
// resolver.
type Prober interface {
	Exists(path string) bool
}
