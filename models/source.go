// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jeremy Canales

package models

// SourceType discriminates the three recognized source variants.
// The type fully determines which other Source fields are populated.
type SourceType string

const (
	// SourceTypeLocal is a codebase already present on the local filesystem.
	SourceTypeLocal SourceType = "local"

	// SourceTypeGit is a codebase fetched from a git remote.
	SourceTypeGit SourceType = "git"

	// SourceTypeZip is a codebase downloaded as a zip archive.
	SourceTypeZip SourceType = "zip"
)

// Source is the resolved description of one codebase to fetch or mount.
// A Source is immutable once constructed; it never mixes fields across
// variants.
type Source struct {
	// Type identifies the variant: local, git or zip.
	Type SourceType `json:"type"`

	// Path is the absolute on-disk location of the codebase: the resolved
	// filesystem path for local sources, the checkout path for git sources,
	// and the extraction path for zip sources.
	Path string `json:"path"`

	// Basename is the stable short name of the codebase: the final path
	// segment for local sources, the repository name for git sources, and
	// the archive name with the .zip suffix and any trailing version run
	// stripped for zip sources.
	Basename string `json:"basename"`

	// URL is the normalized clone URL for git sources or the original
	// download URL for zip sources. Empty for local sources.
	URL string `json:"url,omitempty"`

	// Ref is the git branch, tag or commit to check out. Defaults to
	// "master". Empty for non-git sources.
	Ref string `json:"ref,omitempty"`

	// TestsPath is the sibling directory used for the secondary "tests"
	// copy of the core codebase. Populated only for the root core source.
	TestsPath string `json:"testsPath,omitempty"`
}
