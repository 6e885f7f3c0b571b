package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// configPath is bound to the persistent --config flag.
var configPath string

// NewRootCmd creates the top-level `modfetch` command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "modfetch",
		Short: "modfetch — declarative mod downloads for your modpack",
		Long: `modfetch materializes the mods declared in modlist.json into your mods
directory, fetching each one from GitHub releases, CurseForge, or a local
copy. Files already present are skipped, so re-running only fetches what
is missing.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "modfetch.toml", "Path to the modfetch settings file")

	root.AddCommand(newSyncCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newReportCmd())

	return root
}

// Execute runs the root command.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
