package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"modfetch/internal/config"
	"modfetch/internal/manifest"
	"modfetch/internal/mod"
)

// newRemoveCmd creates the `remove` command.
// Usage: modfetch remove <filename>
func newRemoveCmd() *cobra.Command {
	var keepFile bool

	cmd := &cobra.Command{
		Use:   "remove <filename>",
		Short: "Remove a mod from modlist.json and delete its file",
		Long: `Removes the mod with the given filename from the manifest and deletes
the file from the destination directory.

Example:
  modfetch remove SomeMod-1.2.3.jar`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return resolveManifestFilenames(configPath, toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(configPath, args[0], keepFile)
		},
	}

	cmd.Flags().BoolVar(&keepFile, "keep-file", false, "Keep the downloaded file in the destination directory")

	return cmd
}

func runRemove(configPath, filename string, keepFile bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	prov := mod.NewProviders(cfg, config.SecretsFromEnv())

	deps, err := manifest.Load(cfg.ManifestPath, prov)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	kept := make([]mod.Dependency, 0, len(deps))
	found := false
	for _, d := range deps {
		if d.Filename() == filename {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return fmt.Errorf("%s not found in %s", filename, cfg.ManifestPath)
	}

	if err := manifest.Save(cfg.ManifestPath, kept); err != nil {
		return err
	}
	fmt.Printf("🗑️  Removed %s from %s\n", filename, cfg.ManifestPath)

	if !keepFile {
		target := filepath.Join(cfg.DestDir, filename)
		if prov.Files.Exists(target) {
			if err := prov.Files.Remove(target); err != nil {
				return fmt.Errorf("deleting %s: %w", target, err)
			}
			fmt.Printf("🧹 Deleted %s\n", target)
		}
	}

	return nil
}
