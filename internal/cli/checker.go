package cli

import (
	"path/filepath"

	"modfetch/internal/mod"
)

// CheckStatus describes whether one manifest mod is present on disk.
type CheckStatus int

const (
	CheckPresent CheckStatus = iota // file exists in the destination
	CheckMissing                    // declared in the manifest, not on disk
)

// CheckResult holds the outcome of checking one manifest entry.
type CheckResult struct {
	Filename string
	Source   mod.Source
	Status   CheckStatus
}

// CheckMods reports which manifest mods are present in the destination
// directory. This is a pure read: it performs no downloads and reads state
// only through its arguments.
func CheckMods(deps []mod.Dependency, destDir string, fs mod.FileWriter) []CheckResult {
	results := make([]CheckResult, 0, len(deps))

	for _, dep := range deps {
		status := CheckMissing
		if fs.Exists(filepath.Join(destDir, dep.Filename())) {
			status = CheckPresent
		}
		results = append(results, CheckResult{
			Filename: dep.Filename(),
			Source:   dep.Source(),
			Status:   status,
		})
	}

	return results
}
