package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"modfetch/internal/config"
	"modfetch/internal/manifest"
	"modfetch/internal/mod"
	"modfetch/internal/report"
)

// newReportCmd creates the `report` command.
// Usage: modfetch report
func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Regenerate the markdown mod report without downloading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(configPath)
		},
	}
}

func runReport(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	prov := mod.NewProviders(cfg, config.SecretsFromEnv())

	deps, err := manifest.Load(cfg.ManifestPath, prov)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	if err := report.Write(cfg.ReportPath, deps); err != nil {
		return err
	}

	fmt.Printf("📝 Report written to %s\n", cfg.ReportPath)
	return nil
}
