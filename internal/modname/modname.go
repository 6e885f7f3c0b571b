// Package modname derives display-friendly version strings from mod
// filenames. The result is purely cosmetic and never used for identity.
package modname

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// archiveExtensions are stripped from the end of a filename before the
// version is extracted.
var archiveExtensions = []string{".jar", ".zip", ".litemod"}

// noisePrefixes are build-target and packaging tags that commonly precede
// the actual version token in mod filenames.
var noisePrefixes = []string{
	"all-",
	"fabric-",
	"forge-",
	"neoforge-",
	"quilt-",
}

// Version extracts a best-effort version string from a mod filename.
//
//	"ExampleMod-1.2.3.jar"      → "1.2.3"
//	"[1.7.10] OtherMod v2.jar"  → "v2"
//	"Mod-fabric-1.19.2.jar"     → "1.19.2"
//
// It is a total function: malformed input yields an empty or unstripped
// string, never a panic.
func Version(filename string) string {
	name := filename
	for _, ext := range archiveExtensions {
		name = strings.TrimSuffix(name, ext)
	}

	// Drop the leading mod-name segment: everything up to the first dash,
	// or up to the last space when there is no dash.
	if i := strings.Index(name, "-"); i >= 0 {
		name = name[i+1:]
	} else if i := strings.LastIndex(name, " "); i >= 0 {
		name = name[i+1:]
	}

	for {
		stripped := stripNoise(name)
		if stripped == name {
			break
		}
		name = stripped
	}

	// Normalize tokens that parse as a real version.
	if v, err := semver.NewVersion(name); err == nil {
		return v.Original()
	}
	return name
}

// stripNoise removes one layer of leading noise: separators, a
// bracket-wrapped tag, or a known build-target prefix.
func stripNoise(s string) string {
	s = strings.TrimLeft(s, "-/ ")

	if strings.HasPrefix(s, "[") {
		if i := strings.Index(s, "]"); i >= 0 {
			return s[i+1:]
		}
	}

	lower := strings.ToLower(s)
	for _, prefix := range noisePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return s[len(prefix):]
		}
	}

	return s
}
