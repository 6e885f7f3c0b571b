package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const DefaultConfigFile = "modfetch.toml"

// Config holds the tool's own settings, read from modfetch.toml.
// Every field has a sensible default so the file is optional.
type Config struct {
	// ManifestPath is the JSON mod list driving a run.
	ManifestPath string `toml:"manifest"`
	// DestDir is the directory that receives downloaded mod files.
	DestDir string `toml:"destination"`
	// LocalRoot is the trusted root that local source paths resolve against.
	LocalRoot string `toml:"local_root"`
	// ReportPath is where the markdown mod report is written.
	ReportPath string `toml:"report"`
	// API base URLs, overridable for testing against fake servers.
	GitHubAPI     string `toml:"github_api"`
	CurseForgeAPI string `toml:"curseforge_api"`
}

// Default returns a Config with all defaults filled in.
func Default() *Config {
	return &Config{
		ManifestPath:  "modlist.json",
		DestDir:       "mods",
		LocalRoot:     ".",
		ReportPath:    "MODLIST.md",
		GitHubAPI:     "https://api.github.com",
		CurseForgeAPI: "https://api.curseforge.com/v1",
	}
}

// Load reads a modfetch.toml file from the given path.
// If the file does not exist it returns the defaults (no error).
// Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// githubTokenEnvVars lists the environment variables checked for a GitHub
// token, in priority order.
var githubTokenEnvVars = []string{
	"GITHUB_TOKEN",
	"GH_TOKEN",
}

const curseforgeTokenEnvVar = "CURSEFORGE_TOKEN"

// Secrets holds the per-provider API tokens. A missing token is an empty
// string, not an error: both providers serve public content without auth,
// just with stricter rate limits.
type Secrets struct {
	GitHubToken     string
	CurseForgeToken string
}

// SecretsFromEnv reads provider tokens from the environment once at startup.
func SecretsFromEnv() Secrets {
	var s Secrets
	for _, env := range githubTokenEnvVars {
		if v := os.Getenv(env); v != "" {
			s.GitHubToken = v
			break
		}
	}
	s.CurseForgeToken = os.Getenv(curseforgeTokenEnvVar)
	return s
}

// ParseRepoURL extracts "owner" and "repo" from a GitHub repository URL like
// https://github.com/owner/repo or https://github.com/owner/repo.git.
// Anything with fewer than two path segments is rejected.
func ParseRepoURL(raw string) (owner, repo string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid repository URL %q: %w", raw, err)
	}

	path := strings.Trim(u.Path, "/")
	segments := strings.SplitN(path, "/", 3)
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return "", "", fmt.Errorf("invalid repository URL %q: must contain owner/repo", raw)
	}

	return segments[0], strings.TrimSuffix(segments[1], ".git"), nil
}
