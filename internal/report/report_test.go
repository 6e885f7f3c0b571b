package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"modfetch/internal/mod"
)

func testDeps(t *testing.T) []mod.Dependency {
	t.Helper()
	prov := &mod.Providers{Files: &mod.OSFileWriter{}, LocalRoot: "."}

	gh, err := mod.NewGitHub(prov, "https://github.com/example/Zebra-Mod", "v1.0", "ZebraMod-1.0.jar")
	if err != nil {
		t.Fatal(err)
	}
	cf, err := mod.NewCurseForge(prov, "https://www.curseforge.com/minecraft/mc-mods/apple-core", 1001, 2002, "AppleCore-3.1.2.jar")
	if err != nil {
		t.Fatal(err)
	}
	local, err := mod.NewLocal(prov, "patches/midfix.jar", "Midfix.jar")
	if err != nil {
		t.Fatal(err)
	}
	return []mod.Dependency{gh, cf, local}
}

func TestBuild_SortedCaseInsensitive(t *testing.T) {
	t.Parallel()
	out := Build(testDeps(t))

	lines := strings.Split(out, "\n")
	var rows []string
	for _, line := range lines {
		if strings.HasPrefix(line, "|") && !strings.Contains(line, "Name") && !strings.Contains(line, "---") {
			rows = append(rows, line)
		}
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 table rows, got %d:\n%s", len(rows), out)
	}

	// apple-core < Midfix < Zebra-Mod, case-insensitively.
	if !strings.Contains(rows[0], "apple-core") {
		t.Errorf("row 0 = %q, want apple-core first", rows[0])
	}
	if !strings.Contains(rows[1], "Midfix") {
		t.Errorf("row 1 = %q, want Midfix second", rows[1])
	}
	if !strings.Contains(rows[2], "Zebra-Mod") {
		t.Errorf("row 2 = %q, want Zebra-Mod last", rows[2])
	}
}

func TestBuild_DeterministicUnderReordering(t *testing.T) {
	t.Parallel()
	deps := testDeps(t)
	reference := Build(deps)

	reordered := []mod.Dependency{deps[2], deps[0], deps[1]}
	if got := Build(reordered); got != reference {
		t.Errorf("Build is order-sensitive:\nreference:\n%s\ngot:\n%s", reference, got)
	}
}

func TestBuild_SourceLinks(t *testing.T) {
	t.Parallel()
	out := Build(testDeps(t))

	if !strings.Contains(out, "[SOURCE](https://github.com/example/Zebra-Mod)") {
		t.Errorf("missing github source link:\n%s", out)
	}
	if !strings.Contains(out, "[SOURCE](https://www.curseforge.com/minecraft/mc-mods/apple-core)") {
		t.Errorf("missing curseforge source link:\n%s", out)
	}
	// Local entries carry their source path, not a markdown link.
	if !strings.Contains(out, "patches/midfix.jar") {
		t.Errorf("missing local source path:\n%s", out)
	}
}

func TestBuild_Versions(t *testing.T) {
	t.Parallel()
	out := Build(testDeps(t))

	if !strings.Contains(out, "3.1.2") {
		t.Errorf("missing derived version 3.1.2:\n%s", out)
	}
	if !strings.Contains(out, "1.0") {
		t.Errorf("missing derived version 1.0:\n%s", out)
	}
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()
	out := Build(nil)
	if !strings.Contains(out, "# Mod List") {
		t.Errorf("empty report should keep the heading:\n%s", out)
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "MODLIST.md")
	deps := testDeps(t)

	if err := Write(path, deps); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != Build(deps) {
		t.Error("written report differs from Build output")
	}
}
