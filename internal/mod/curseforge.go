package mod

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
)

// CurseForgeDependency fetches one file from a CurseForge project.
//
// Resolution is two-step: ask the API for a signed download URL for the
// project/file pair, then fetch that URL.
type CurseForgeDependency struct {
	prov *Providers

	url     string // public project page URL, for the report
	project int
	file    int
	jarName string
}

var _ Dependency = (*CurseForgeDependency)(nil)
var _ Linker = (*CurseForgeDependency)(nil)

// NewCurseForge creates a CurseForgeDependency.
func NewCurseForge(prov *Providers, pageURL string, project, file int, jarName string) (*CurseForgeDependency, error) {
	if project <= 0 {
		return nil, fmt.Errorf("curseforge dependency: invalid project id %d", project)
	}
	if file <= 0 {
		return nil, fmt.Errorf("curseforge dependency: invalid file id %d", file)
	}
	if jarName == "" {
		return nil, errors.New("curseforge dependency: jar_name must not be empty")
	}

	return &CurseForgeDependency{
		prov:    prov,
		url:     pageURL,
		project: project,
		file:    file,
		jarName: jarName,
	}, nil
}

func (d *CurseForgeDependency) Headers() map[string]string {
	h := baseHeaders()
	h["x-api-key"] = d.prov.CurseForgeToken
	return h
}

func (d *CurseForgeDependency) Source() Source { return SourceCurseForge }

func (d *CurseForgeDependency) Filename() string { return d.jarName }

func (d *CurseForgeDependency) ProjectURL() string { return d.url }

type curseforgeData struct {
	URL     string `json:"url"`
	Project int    `json:"project"`
	File    int    `json:"file"`
	JarName string `json:"jar_name"`
}

func (d *CurseForgeDependency) Record() Record {
	return Record{
		Source: SourceCurseForge,
		Data:   curseforgeData{URL: d.url, Project: d.project, File: d.file, JarName: d.jarName},
	}
}

func (d *CurseForgeDependency) Download(destDir string) (Status, error) {
	dest := filepath.Join(destDir, d.jarName)
	if d.prov.Files.Exists(dest) {
		return StatusSkipped, nil
	}

	resolveURL := fmt.Sprintf("%s/mods/%d/files/%d/download-url",
		d.prov.CurseForgeAPI, d.project, d.file)
	body, err := d.prov.get(resolveURL, d.Headers())
	if err != nil {
		return StatusError, fmt.Errorf("resolving download URL for project %d file %d: %w", d.project, d.file, err)
	}

	var resolved struct {
		Data string `json:"data"`
	}
	if err := json.Unmarshal(body, &resolved); err != nil {
		return StatusError, fmt.Errorf("decoding download URL for project %d: %w", d.project, err)
	}
	if resolved.Data == "" {
		return StatusError, fmt.Errorf("empty download URL for project %d file %d", d.project, d.file)
	}

	headers := d.Headers()
	headers["Accept"] = "application/java-archive"
	content, err := d.prov.get(resolved.Data, headers)
	if err != nil {
		return StatusError, fmt.Errorf("downloading %s: %w", d.jarName, err)
	}

	if err := d.prov.Files.Write(dest, content); err != nil {
		return StatusError, fmt.Errorf("%w: writing %s: %v", ErrFatal, dest, err)
	}

	return StatusSuccess, nil
}
