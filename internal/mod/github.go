package mod

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"modfetch/internal/config"
)

// GitHubDependency fetches one asset from a GitHub release.
//
// Resolution is two-step: list the release identified by owner/repo/tag,
// match an asset by filename, then fetch that asset's binary content.
type GitHubDependency struct {
	prov *Providers

	url         string // public repository URL, for the report
	owner, repo string
	tag         string
	filename    string
}

var _ Dependency = (*GitHubDependency)(nil)
var _ Linker = (*GitHubDependency)(nil)

// NewGitHub creates a GitHubDependency. Owner and repo are parsed out of the
// repository URL; URLs without an owner/repo path are rejected.
func NewGitHub(prov *Providers, repoURL, tag, filename string) (*GitHubDependency, error) {
	owner, repo, err := config.ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}
	if tag == "" {
		return nil, errors.New("github dependency: tag must not be empty")
	}
	if filename == "" {
		return nil, errors.New("github dependency: filename must not be empty")
	}

	return &GitHubDependency{
		prov:     prov,
		url:      repoURL,
		owner:    owner,
		repo:     repo,
		tag:      tag,
		filename: filename,
	}, nil
}

func (d *GitHubDependency) Headers() map[string]string {
	h := baseHeaders()
	h["Authorization"] = "Bearer " + d.prov.GitHubToken
	return h
}

func (d *GitHubDependency) Source() Source { return SourceGitHub }

func (d *GitHubDependency) Filename() string { return d.filename }

func (d *GitHubDependency) ProjectURL() string { return d.url }

type githubData struct {
	URL      string `json:"url"`
	Tag      string `json:"tag"`
	Filename string `json:"filename"`
}

func (d *GitHubDependency) Record() Record {
	return Record{
		Source: SourceGitHub,
		Data:   githubData{URL: d.url, Tag: d.tag, Filename: d.filename},
	}
}

// releaseAsset is the slice of the GitHub release response we care about.
type releaseAsset struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (d *GitHubDependency) Download(destDir string) (Status, error) {
	dest := filepath.Join(destDir, d.filename)
	if d.prov.Files.Exists(dest) {
		return StatusSkipped, nil
	}

	releaseURL := fmt.Sprintf("%s/repos/%s/%s/releases/tags/%s",
		d.prov.GitHubAPI, d.owner, d.repo, d.tag)
	body, err := d.prov.get(releaseURL, d.Headers())
	if err != nil {
		return StatusError, fmt.Errorf("resolving release %s/%s@%s: %w", d.owner, d.repo, d.tag, err)
	}

	var release struct {
		Assets []releaseAsset `json:"assets"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return StatusError, fmt.Errorf("decoding release %s/%s@%s: %w", d.owner, d.repo, d.tag, err)
	}

	var assetID int64 = -1
	for _, a := range release.Assets {
		if a.Name == d.filename {
			assetID = a.ID
			break
		}
	}
	if assetID < 0 {
		return StatusError, fmt.Errorf("release %s/%s@%s has no asset named %q", d.owner, d.repo, d.tag, d.filename)
	}

	headers := d.Headers()
	headers["Accept"] = "application/octet-stream"
	assetURL := fmt.Sprintf("%s/repos/%s/%s/releases/assets/%d",
		d.prov.GitHubAPI, d.owner, d.repo, assetID)
	content, err := d.prov.get(assetURL, headers)
	if err != nil {
		return StatusError, fmt.Errorf("downloading %s: %w", d.filename, err)
	}

	if err := d.prov.Files.Write(dest, content); err != nil {
		return StatusError, fmt.Errorf("%w: writing %s: %v", ErrFatal, dest, err)
	}

	return StatusSuccess, nil
}
