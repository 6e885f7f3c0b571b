package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"modfetch/internal/mod"
)

const DefaultManifestFile = "modlist.json"

// rawRecord is the untyped manifest entry before dispatch on "source".
type rawRecord struct {
	Source string          `json:"source"`
	Data   json.RawMessage `json:"data"`
}

// Load reads and decodes a modlist.json file.
// If the file does not exist it returns an empty list (no error), so that
// `modfetch add` can bootstrap a fresh manifest.
func Load(path string, prov *mod.Providers) ([]mod.Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Decode(data, prov)
}

// Decode turns the manifest's raw record list into typed dependencies,
// preserving manifest order. Any unrecognized source or missing required
// field fails the whole decode: no partial manifest is accepted.
func Decode(data []byte, prov *mod.Providers) ([]mod.Dependency, error) {
	var records []rawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	deps := make([]mod.Dependency, 0, len(records))
	for i, rec := range records {
		dep, err := decodeRecord(rec, prov)
		if err != nil {
			return nil, fmt.Errorf("manifest entry %d: %w", i, err)
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func decodeRecord(rec rawRecord, prov *mod.Providers) (mod.Dependency, error) {
	if rec.Source == "" {
		return nil, fmt.Errorf("missing source")
	}
	if len(rec.Data) == 0 {
		return nil, fmt.Errorf("%s mod: missing data", rec.Source)
	}

	switch mod.Source(rec.Source) {
	case mod.SourceGitHub:
		var d struct {
			URL      *string `json:"url"`
			Tag      *string `json:"tag"`
			Filename *string `json:"filename"`
		}
		if err := json.Unmarshal(rec.Data, &d); err != nil {
			return nil, fmt.Errorf("github mod: %w", err)
		}
		if err := require(map[string]bool{
			"url":      d.URL != nil,
			"tag":      d.Tag != nil,
			"filename": d.Filename != nil,
		}); err != nil {
			return nil, fmt.Errorf("github mod: %w", err)
		}
		return mod.NewGitHub(prov, *d.URL, *d.Tag, *d.Filename)

	case mod.SourceCurseForge:
		var d struct {
			URL     *string `json:"url"`
			Project *int    `json:"project"`
			File    *int    `json:"file"`
			JarName *string `json:"jar_name"`
		}
		if err := json.Unmarshal(rec.Data, &d); err != nil {
			return nil, fmt.Errorf("curseforge mod: %w", err)
		}
		if err := require(map[string]bool{
			"url":      d.URL != nil,
			"project":  d.Project != nil,
			"file":     d.File != nil,
			"jar_name": d.JarName != nil,
		}); err != nil {
			return nil, fmt.Errorf("curseforge mod: %w", err)
		}
		return mod.NewCurseForge(prov, *d.URL, *d.Project, *d.File, *d.JarName)

	case mod.SourceLocal:
		var d struct {
			Path    *string `json:"path"`
			JarName *string `json:"jar_name"`
		}
		if err := json.Unmarshal(rec.Data, &d); err != nil {
			return nil, fmt.Errorf("local mod: %w", err)
		}
		if err := require(map[string]bool{
			"path":     d.Path != nil,
			"jar_name": d.JarName != nil,
		}); err != nil {
			return nil, fmt.Errorf("local mod: %w", err)
		}
		return mod.NewLocal(prov, *d.Path, *d.JarName)

	default:
		return nil, fmt.Errorf("unknown source %q", rec.Source)
	}
}

// require reports the first missing field by name, in a fixed order so the
// error message is stable.
func require(fields map[string]bool) error {
	for _, name := range []string{"url", "tag", "filename", "project", "file", "path", "jar_name"} {
		present, checked := fields[name]
		if checked && !present {
			return fmt.Errorf("missing field %q", name)
		}
	}
	return nil
}

// Save writes the dependencies back to the manifest in their record form.
func Save(path string, deps []mod.Dependency) error {
	records := make([]mod.Record, 0, len(deps))
	for _, d := range deps {
		records = append(records, d.Record())
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
