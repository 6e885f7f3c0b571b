package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"modfetch/internal/config"
	"modfetch/internal/manifest"
	"modfetch/internal/mod"
)

// resolveManifestFilenames completes `remove` arguments from the manifest.
func resolveManifestFilenames(configPath, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	prov := mod.NewProviders(cfg, config.Secrets{})

	deps, err := manifest.Load(cfg.ManifestPath, prov)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, d := range deps {
		if strings.HasPrefix(d.Filename(), toComplete) {
			completions = append(completions, fmt.Sprintf("%s\t%s", d.Filename(), d.Source()))
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}
