// Package codepad is a terminal code editor widget for Bubble Tea: an edit
// buffer, a regex highlighter and a two-surface renderer.
//
// The widget lives in package editor; buffer and highlight can be used on
// their own.
package codepad

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// BuildVersion returns the version reported by `codepad --version`: the
// linker-stamped value when set, the embedded one otherwise.
func BuildVersion(stamped string) string {
	if s := strings.TrimPrefix(strings.TrimSpace(stamped), "v"); s != "" && s != "dev" && IsSemver(s) {
		return s
	}
	return Version()
}
