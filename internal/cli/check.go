package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"modfetch/internal/config"
	"modfetch/internal/manifest"
	"modfetch/internal/mod"
)

// newCheckCmd creates the `check` command.
// Usage: modfetch check [--strict]
func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check which declared mods are present in the destination directory",
		Long: `Lists every mod in modlist.json and whether its file exists in the
destination directory, without downloading anything. Useful before a sync
or in CI pipelines.

With --strict, the command exits with a non-zero code if any mod is missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(configPath, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with error code if any mod is missing")

	return cmd
}

func runCheck(configPath string, strict bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	prov := mod.NewProviders(cfg, config.SecretsFromEnv())
	return runCheckWith(cfg, prov, strict, os.Stdout)
}

// runCheckWith is the testable core of the check command.
func runCheckWith(cfg *config.Config, prov *mod.Providers, strict bool, out io.Writer) error {
	deps, err := manifest.Load(cfg.ManifestPath, prov)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	if len(deps) == 0 {
		fmt.Fprintf(out, "📋 No mods in %s — nothing to check.\n", cfg.ManifestPath)
		return nil
	}

	results := CheckMods(deps, cfg.DestDir, prov.Files)

	fmt.Fprintf(out, "🔍 Checking %d mod(s) in %s...\n\n", len(results), cfg.DestDir)

	var missing int
	for _, r := range results {
		switch r.Status {
		case CheckPresent:
			fmt.Fprintf(out, "  ✅ %s — present\n", r.Filename)
		case CheckMissing:
			fmt.Fprintf(out, "  ❌ %s — missing (%s)\n", r.Filename, r.Source)
			missing++
		}
	}

	fmt.Fprintln(out)
	if missing > 0 {
		msg := fmt.Sprintf("%d mod(s) missing. Run 'modfetch sync' to fetch them.", missing)
		if strict {
			return fmt.Errorf("%s", msg)
		}
		fmt.Fprintf(out, "⚠️  %s\n", msg)
	} else {
		fmt.Fprintln(out, "✅ All mods are present.")
	}
	return nil
}
