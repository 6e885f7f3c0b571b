package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"modfetch/internal/config"
	"modfetch/internal/manifest"
	"modfetch/internal/mod"
)

// newAddCmd creates the `add` command and its per-source subcommands.
// Usage: modfetch add github|curseforge|local ...
func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a mod to modlist.json",
		Long:  "Adds a mod entry to the manifest. Run 'modfetch sync' afterwards to fetch it.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "github <repo-url> <tag> <filename>",
		Short: "Add a GitHub release asset",
		Long: `Adds a mod fetched from a GitHub release.

Example:
  modfetch add github https://github.com/example/some-mod v1.2.3 SomeMod-1.2.3.jar`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(configPath, func(prov *mod.Providers) (mod.Dependency, error) {
				return mod.NewGitHub(prov, args[0], args[1], args[2])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "curseforge <page-url> <project-id> <file-id> <jar-name>",
		Short: "Add a CurseForge file",
		Long: `Adds a mod fetched from CurseForge by project and file id.

Example:
  modfetch add curseforge https://www.curseforge.com/minecraft/mc-mods/jei 238222 4712866 jei-1.20.1.jar`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[1])
			}
			file, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid file id %q", args[2])
			}
			return runAdd(configPath, func(prov *mod.Providers) (mod.Dependency, error) {
				return mod.NewCurseForge(prov, args[0], project, file, args[3])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "local <path> <jar-name>",
		Short: "Add a local file copy",
		Long: `Adds a mod copied from a path under the local source root.

Example:
  modfetch add local patches/MyFix.jar MyFix.jar`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(configPath, func(prov *mod.Providers) (mod.Dependency, error) {
				return mod.NewLocal(prov, args[0], args[1])
			})
		},
	})

	return cmd
}

// runAdd appends a dependency built by construct to the manifest.
func runAdd(configPath string, construct func(*mod.Providers) (mod.Dependency, error)) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	prov := mod.NewProviders(cfg, config.SecretsFromEnv())

	deps, err := manifest.Load(cfg.ManifestPath, prov)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	dep, err := construct(prov)
	if err != nil {
		return err
	}

	for _, existing := range deps {
		if existing.Filename() == dep.Filename() {
			return fmt.Errorf("%s is already in the manifest (%s)", dep.Filename(), existing.Source())
		}
	}

	deps = append(deps, dep)
	if err := manifest.Save(cfg.ManifestPath, deps); err != nil {
		return err
	}

	fmt.Printf("📦 Added %s (%s) to %s\n", dep.Filename(), dep.Source(), cfg.ManifestPath)
	return nil
}
