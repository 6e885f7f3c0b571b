// Package downloader drives the sequential download of every manifest
// dependency into the destination directory.
package downloader

import (
	"errors"
	"fmt"
	"io"

	"modfetch/internal/mod"
)

// Summary tallies the outcome of one run.
type Summary struct {
	Installed int
	Skipped   int
	Errors    int
}

// Run downloads each dependency in manifest order, printing one progress
// line per mod to out. One mod's failure does not stop the rest: provider
// errors are counted and the loop continues. The only hard stop is a
// filesystem fault (mod.ErrFatal), which aborts the run with the partial
// summary accumulated so far.
func Run(deps []mod.Dependency, destDir string, out io.Writer) (Summary, error) {
	var sum Summary

	for _, dep := range deps {
		status, err := dep.Download(destDir)
		if err != nil && errors.Is(err, mod.ErrFatal) {
			return sum, fmt.Errorf("%s: %w", dep.Filename(), err)
		}

		switch status {
		case mod.StatusSuccess:
			sum.Installed++
			fmt.Fprintf(out, "  ✅ %s (%s)\n", dep.Filename(), dep.Source())
		case mod.StatusSkipped:
			sum.Skipped++
			fmt.Fprintf(out, "  ⏭️  %s — already present\n", dep.Filename())
		case mod.StatusError:
			sum.Errors++
			fmt.Fprintf(out, "  ❌ %s: %s\n", dep.Filename(), err)
		}
	}

	return sum, nil
}
