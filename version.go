// Package vellum exposes build metadata for the editor binary and for
// programs embedding the editor component.
package vellum

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version recorded in the VERSION file,
// without a leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version prefixed with v, the form used for release
// tags.
func VersionTag() string {
	return "v" + Version()
}

// Core SemVer 2.0.0 with optional pre-release and build metadata.
var semverPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// IsSemver reports whether v is well-formed SemVer 2.0.0. Surrounding
// whitespace is ignored.
func IsSemver(v string) bool {
	return semverPattern.MatchString(strings.TrimSpace(v))
}

// VersionIsSemver reports whether the embedded version is well formed.
func VersionIsSemver() bool {
	return IsSemver(Version())
}
