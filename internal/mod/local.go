package mod

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LocalDependency byte-copies a file from a path under the trusted local
// root. It performs no network calls.
type LocalDependency struct {
	prov *Providers

	path    string // source path, relative to Providers.LocalRoot
	jarName string
}

var _ Dependency = (*LocalDependency)(nil)

// NewLocal creates a LocalDependency.
func NewLocal(prov *Providers, path, jarName string) (*LocalDependency, error) {
	if path == "" {
		return nil, errors.New("local dependency: path must not be empty")
	}
	if jarName == "" {
		return nil, errors.New("local dependency: jar_name must not be empty")
	}

	return &LocalDependency{prov: prov, path: path, jarName: jarName}, nil
}

func (d *LocalDependency) Headers() map[string]string { return baseHeaders() }

func (d *LocalDependency) Source() Source { return SourceLocal }

func (d *LocalDependency) Filename() string { return d.jarName }

// Path returns the source path relative to the local root.
func (d *LocalDependency) Path() string { return d.path }

type localData struct {
	Path    string `json:"path"`
	JarName string `json:"jar_name"`
}

func (d *LocalDependency) Record() Record {
	return Record{
		Source: SourceLocal,
		Data:   localData{Path: d.path, JarName: d.jarName},
	}
}

// Download copies the source file into destDir. A missing or unreadable
// source is a fault in the modpack itself, so it wraps ErrFatal and aborts
// the run rather than counting as a download error.
func (d *LocalDependency) Download(destDir string) (Status, error) {
	dest := filepath.Join(destDir, d.jarName)
	if d.prov.Files.Exists(dest) {
		return StatusSkipped, nil
	}

	src := filepath.Join(d.prov.LocalRoot, d.path)
	content, err := os.ReadFile(src)
	if err != nil {
		return StatusError, fmt.Errorf("%w: reading %s: %v", ErrFatal, src, err)
	}

	if err := d.prov.Files.Write(dest, content); err != nil {
		return StatusError, fmt.Errorf("%w: writing %s: %v", ErrFatal, dest, err)
	}

	return StatusSuccess, nil
}
