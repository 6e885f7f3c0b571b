package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"modfetch/internal/config"
	"modfetch/internal/downloader"
	"modfetch/internal/manifest"
	"modfetch/internal/mod"
	"modfetch/internal/report"
)

// newSyncCmd creates the `sync` command.
// Usage: modfetch sync
func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Download every mod declared in modlist.json",
		Long: `Downloads all mods declared in the manifest into the destination
directory. Mods whose file already exists are skipped. After the run a
markdown report of the mod list is written (unless running in CI).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(configPath)
		},
	}
}

func runSync(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	prov := mod.NewProviders(cfg, config.SecretsFromEnv())
	return runSyncWith(cfg, prov, os.Stdout)
}

// runSyncWith is the testable core of the sync command.
func runSyncWith(cfg *config.Config, prov *mod.Providers, out io.Writer) error {
	deps, err := manifest.Load(cfg.ManifestPath, prov)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	if len(deps) == 0 {
		fmt.Fprintf(out, "📋 No mods in %s — nothing to sync.\n", cfg.ManifestPath)
		return nil
	}

	if err := prov.Files.MkdirAll(cfg.DestDir); err != nil {
		return fmt.Errorf("creating destination directory: %w", err)
	}

	fmt.Fprintf(out, "🔄 Syncing %d mod(s) into %s...\n\n", len(deps), cfg.DestDir)

	sum, err := downloader.Run(deps, cfg.DestDir, out)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nMods Installed: %d\n", sum.Installed)
	fmt.Fprintf(out, "Mods Skipped: %d\n", sum.Skipped)
	fmt.Fprintf(out, "Errors: %d\n", sum.Errors)

	// The report is a function of the manifest, not of the download
	// outcomes, and is pointless noise in CI runs.
	if os.Getenv("CI") != "true" {
		if err := report.Write(cfg.ReportPath, deps); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n📝 Report written to %s\n", cfg.ReportPath)
	}

	return nil
}
