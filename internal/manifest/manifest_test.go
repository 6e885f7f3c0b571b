package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"modfetch/internal/mod"
)

func testProviders() *mod.Providers {
	return &mod.Providers{Files: &mod.OSFileWriter{}, LocalRoot: "."}
}

const fullManifest = `[
  {"source": "github", "data": {"url": "https://github.com/example/alpha", "tag": "v1.0", "filename": "Alpha-1.0.jar"}},
  {"source": "curseforge", "data": {"url": "https://www.curseforge.com/minecraft/mc-mods/beta", "project": 238222, "file": 4712866, "jar_name": "Beta-2.0.jar"}},
  {"source": "local", "data": {"path": "patches/Gamma.jar", "jar_name": "Gamma.jar"}}
]`

func TestDecode_AllSources(t *testing.T) {
	t.Parallel()
	deps, err := Decode([]byte(fullManifest), testProviders())
	if err != nil {
		t.Fatal(err)
	}
	if len(deps) != 3 {
		t.Fatalf("len(deps) = %d, want 3", len(deps))
	}

	// Manifest order is preserved.
	wantSources := []mod.Source{mod.SourceGitHub, mod.SourceCurseForge, mod.SourceLocal}
	wantFiles := []string{"Alpha-1.0.jar", "Beta-2.0.jar", "Gamma.jar"}
	for i, d := range deps {
		if d.Source() != wantSources[i] {
			t.Errorf("deps[%d].Source() = %q, want %q", i, d.Source(), wantSources[i])
		}
		if d.Filename() != wantFiles[i] {
			t.Errorf("deps[%d].Filename() = %q, want %q", i, d.Filename(), wantFiles[i])
		}
	}
}

func TestDecode_UnknownSourceFailsWholeDecode(t *testing.T) {
	t.Parallel()
	data := `[
	  {"source": "local", "data": {"path": "a.jar", "jar_name": "a.jar"}},
	  {"source": "modrinth", "data": {"id": "abc"}}
	]`
	deps, err := Decode([]byte(data), testProviders())
	if err == nil {
		t.Fatal("expected error for unknown source, got nil")
	}
	if deps != nil {
		t.Errorf("expected no partial manifest, got %d deps", len(deps))
	}
}

func TestDecode_MissingSource(t *testing.T) {
	t.Parallel()
	data := `[{"data": {"path": "a.jar", "jar_name": "a.jar"}}]`
	if _, err := Decode([]byte(data), testProviders()); err == nil {
		t.Fatal("expected error for missing source, got nil")
	}
}

func TestDecode_MissingRequiredFields(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		data string
	}{
		{"github missing tag", `[{"source": "github", "data": {"url": "https://github.com/a/b", "filename": "f.jar"}}]`},
		{"github missing filename", `[{"source": "github", "data": {"url": "https://github.com/a/b", "tag": "v1"}}]`},
		{"curseforge missing project", `[{"source": "curseforge", "data": {"url": "u", "file": 2, "jar_name": "f.jar"}}]`},
		{"curseforge missing file", `[{"source": "curseforge", "data": {"url": "u", "project": 1, "jar_name": "f.jar"}}]`},
		{"local missing path", `[{"source": "local", "data": {"jar_name": "f.jar"}}]`},
		{"local missing jar_name", `[{"source": "local", "data": {"path": "p.jar"}}]`},
		{"missing data", `[{"source": "local"}]`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Decode([]byte(tc.data), testProviders()); err == nil {
				t.Error("expected decode error, got nil")
			}
		})
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	t.Parallel()
	if _, err := Decode([]byte(`{"not": "a list"}`), testProviders()); err == nil {
		t.Error("expected error for non-list manifest, got nil")
	}
}

func TestLoad_MissingFileReturnsEmpty(t *testing.T) {
	t.Parallel()
	deps, err := Load(filepath.Join(t.TempDir(), "nope.json"), testProviders())
	if err != nil {
		t.Fatal(err)
	}
	if len(deps) != 0 {
		t.Errorf("len(deps) = %d, want 0", len(deps))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()
	prov := testProviders()
	deps, err := Decode([]byte(fullManifest), prov)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "modlist.json")
	if err := Save(path, deps); err != nil {
		t.Fatal(err)
	}

	reloaded, err := Load(path, prov)
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded) != len(deps) {
		t.Fatalf("len(reloaded) = %d, want %d", len(reloaded), len(deps))
	}
	for i := range deps {
		if reloaded[i].Source() != deps[i].Source() || reloaded[i].Filename() != deps[i].Filename() {
			t.Errorf("entry %d: got (%s, %s), want (%s, %s)", i,
				reloaded[i].Source(), reloaded[i].Filename(),
				deps[i].Source(), deps[i].Filename())
		}
	}
}

func TestSave_WritesReadableFile(t *testing.T) {
	t.Parallel()
	deps, err := Decode([]byte(fullManifest), testProviders())
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "modlist.json")
	if err := Save(path, deps); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Error("saved manifest should be non-empty and newline-terminated")
	}
}
