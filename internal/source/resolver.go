// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jeremy Canales

// Package source classifies and normalizes source descriptors (local
// filesystem paths, GitHub shorthand references and remote zip archives)
// into the typed [models.Source] form used by the rest of the engine.
//
// Resolution is a pure function of the descriptor and the directories the
// resolver was constructed with; no filesystem access occurs here.
package source

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jeremycanales01/gutenberg/internal/logger"
	"github.com/jeremycanales01/gutenberg/models"
)

// DefaultGitRef is the ref checked out when a GitHub shorthand descriptor
// carries no explicit "#ref" suffix.
const DefaultGitRef = "master"

var (
	// gitHubPattern matches "owner/repo" with an optional "#ref" suffix.
	gitHubPattern = regexp.MustCompile(`^([\w-]+)/([\w.-]+?)(?:#([\w./-]+))?$`)

	// zipPattern matches an http(s) URL pointing at a .zip archive.
	zipPattern = regexp.MustCompile(`^https?://\S+\.zip$`)

	// versionSuffixPattern matches a trailing version run such as "-1.3",
	// ".8.1.0" or "-v2" in an archive basename.
	versionSuffixPattern = regexp.MustCompile(`[-.]v?\d+(?:[-.]\d+)*$`)
)

// Resolver turns string descriptors into [models.Source] values. All fields
// must be absolute paths; the zero value is not usable, construct one with
// [NewResolver].
type Resolver struct {
	// WorkDirectoryPath is the cache root under which git checkouts and
	// extracted archives are materialized.
	WorkDirectoryPath string

	// ConfigDirectoryPath is the directory containing the configuration
	// file; relative descriptors are resolved against it.
	ConfigDirectoryPath string

	// HomeDirectoryPath is the invoking user's home directory; "~/"
	// descriptors are resolved against it.
	HomeDirectoryPath string

	log *logger.Logger
}

// ResolveOptions adjusts resolution for a single descriptor.
type ResolveOptions struct {
	// AddTestsPath requests the sibling "tests-" directory computed for the
	// root core descriptor.
	AddTestsPath bool
}

// NewResolver constructs a Resolver. A nil log falls back to a no-op logger.
func NewResolver(workDirectoryPath, configDirectoryPath, homeDirectoryPath string, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}

	return &Resolver{
		WorkDirectoryPath:   workDirectoryPath,
		ConfigDirectoryPath: configDirectoryPath,
		HomeDirectoryPath:   homeDirectoryPath,
		log:                 log,
	}
}

// Resolve classifies descriptor against the recognized grammars, tried in
// order: local path, GitHub shorthand, zip archive URL. A descriptor that
// matches none of them fails with [ErrInvalidSource].
func (r *Resolver) Resolve(descriptor string, opts ResolveOptions) (*models.Source, error) {
	switch {
	case isLocalDescriptor(descriptor):
		return r.resolveLocal(descriptor, opts), nil
	case gitHubPattern.MatchString(descriptor):
		return r.resolveGitHub(descriptor), nil
	case zipPattern.MatchString(descriptor):
		return r.resolveZip(descriptor), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSource, descriptor)
	}
}

func isLocalDescriptor(descriptor string) bool {
	return strings.HasPrefix(descriptor, "./") ||
		strings.HasPrefix(descriptor, "../") ||
		strings.HasPrefix(descriptor, "~/")
}

func (r *Resolver) resolveLocal(descriptor string, opts ResolveOptions) *models.Source {
	var resolved string
	if strings.HasPrefix(descriptor, "~/") {
		resolved = filepath.Join(r.HomeDirectoryPath, descriptor[2:])
	} else {
		resolved = filepath.Join(r.ConfigDirectoryPath, descriptor)
	}

	basename := filepath.Base(resolved)
	src := &models.Source{
		Type:     models.SourceTypeLocal,
		Path:     resolved,
		Basename: basename,
	}

	if opts.AddTestsPath {
		src.TestsPath = filepath.Join(filepath.Dir(resolved), "tests-"+basename)
	}

	r.log.Debug().Str("descriptor", descriptor).Str("path", src.Path).Msg("resolved local source")

	return src
}

func (r *Resolver) resolveGitHub(descriptor string) *models.Source {
	fields := gitHubPattern.FindStringSubmatch(descriptor)
	owner, repo, ref := fields[1], fields[2], fields[3]
	if ref == "" {
		ref = DefaultGitRef
	}

	src := &models.Source{
		Type:     models.SourceTypeGit,
		Path:     filepath.Join(r.WorkDirectoryPath, "checkouts", repo),
		Basename: repo,
		URL:      "https://github.com/" + owner + "/" + repo + ".git",
		Ref:      ref,
	}

	r.log.Debug().Str("descriptor", descriptor).Str("url", src.URL).Str("ref", ref).Msg("resolved git source")

	return src
}

func (r *Resolver) resolveZip(descriptor string) *models.Source {
	basename := zipBasename(descriptor)
	kind := zipKind(descriptor)

	src := &models.Source{
		Type:     models.SourceTypeZip,
		Path:     filepath.Join(r.WorkDirectoryPath, kind, basename),
		Basename: basename,
		URL:      descriptor,
	}

	r.log.Debug().Str("descriptor", descriptor).Str("kind", kind).Str("basename", basename).Msg("resolved zip source")

	return src
}

// zipBasename derives the stable add-on name from an archive URL: the final
// path segment with the ".zip" suffix and any trailing version run removed.
// An all-numeric name keeps its unstripped form rather than collapsing to an
// empty string.
func zipBasename(rawURL string) string {
	segment := rawURL
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}
	segment = strings.TrimSuffix(segment, ".zip")

	stripped := versionSuffixPattern.ReplaceAllString(segment, "")
	if stripped == "" {
		return segment
	}

	return stripped
}

// zipKind infers whether the archive holds a plugin or a theme from the URL
// path. The kind feeds the extraction path and logging only; the Source
// itself does not retain it.
func zipKind(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "plugin"
	}

	for _, segment := range strings.Split(parsed.Path, "/") {
		if segment == "theme" || segment == "themes" {
			return "theme"
		}
	}

	return "plugin"
}
