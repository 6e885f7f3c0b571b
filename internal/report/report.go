// Package report renders the markdown mod list: one row per mod with its
// display name, derived version, and a link back to where it came from.
package report

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"modfetch/internal/mod"
	"modfetch/internal/modname"
)

const DefaultReportFile = "MODLIST.md"

type row struct {
	name    string
	version string
	source  string
}

// Build renders the report for the given dependencies. It is a pure function
// of the list: no network, no mutation, and the output is identical for any
// input ordering. Dependencies without a public URL and that are not local
// copies are left out.
func Build(deps []mod.Dependency) string {
	rows := make([]row, 0, len(deps))
	for _, d := range deps {
		switch v := d.(type) {
		case mod.Linker:
			rows = append(rows, row{
				name:    displayName(v.ProjectURL()),
				version: modname.Version(d.Filename()),
				source:  fmt.Sprintf("[SOURCE](%s)", v.ProjectURL()),
			})
		case *mod.LocalDependency:
			base := d.Filename()
			base = strings.TrimSuffix(base, path.Ext(base))
			rows = append(rows, row{
				name:    base,
				version: modname.Version(d.Filename()),
				source:  v.Path(),
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		return strings.ToLower(rows[i].name) < strings.ToLower(rows[j].name)
	})

	var buf bytes.Buffer
	buf.WriteString("# Mod List\n\n")

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "Name", "Version", "Source"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	for i, r := range rows {
		table.Append([]string{strconv.Itoa(i + 1), r.name, r.version, r.source})
	}
	table.Render()

	return buf.String()
}

// Write renders the report and writes it to path.
func Write(path string, deps []mod.Dependency) error {
	if err := os.WriteFile(path, []byte(Build(deps)), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// displayName is the last path segment of the project URL, e.g.
// https://github.com/owner/some-mod → "some-mod".
func displayName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || strings.Trim(u.Path, "/") == "" {
		return rawURL
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	return segments[len(segments)-1]
}
