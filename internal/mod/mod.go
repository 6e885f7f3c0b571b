package mod

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"modfetch/internal/config"
)

// Source identifies where a dependency's bytes come from.
type Source string

const (
	SourceGitHub     Source = "github"
	SourceCurseForge Source = "curseforge"
	SourceLocal      Source = "local"
	SourceUnknown    Source = "unknown"
)

// Status is the outcome of one dependency's Download call.
type Status int

const (
	// StatusSkipped means the file was already present in the destination.
	StatusSkipped Status = iota
	// StatusSuccess means the file was fetched and written.
	StatusSuccess
	// StatusError means a provider request failed; nothing was written.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// ErrFatal marks filesystem faults (local source unreadable, destination
// unwritable) that must abort the whole run instead of being counted as a
// per-mod download error.
var ErrFatal = errors.New("unrecoverable filesystem fault")

// Record is the manifest wire form of one dependency:
// {"source": <kind>, "data": {...variant fields}}.
type Record struct {
	Source Source `json:"source"`
	Data   any    `json:"data"`
}

// Dependency is one manifest-declared mod file to be materialized in the
// destination directory. Implementations are constructed once per run from
// the manifest and are immutable afterwards.
type Dependency interface {
	// Headers returns the request headers this dependency's provider needs,
	// including any auth header.
	Headers() map[string]string

	// Source returns the provider kind.
	Source() Source

	// Filename is the name the mod will have inside the destination
	// directory. It is the unique key within one destination.
	Filename() string

	// Record round-trips the dependency back to its manifest record shape.
	Record() Record

	// Download materializes the file under destDir. It first checks whether
	// destDir/filename already exists and returns StatusSkipped if so, making
	// repeated runs idempotent. Provider failures return StatusError with a
	// descriptive error; filesystem faults wrap ErrFatal.
	Download(destDir string) (Status, error)
}

// Linker is implemented by dependencies that point at a public project page,
// used for the source link column of the mod report.
type Linker interface {
	ProjectURL() string
}

func baseHeaders() map[string]string {
	return map[string]string{"Accept": "application/json"}
}

// requestTimeout bounds every provider request. Fetches are single-shot:
// no retry, no backoff.
const requestTimeout = 5 * time.Second

// Providers carries the collaborators shared by every dependency: the HTTP
// client, filesystem access, API endpoints, and provider tokens. Passing it
// into constructors keeps credentials out of global state so tests can supply
// fakes.
type Providers struct {
	Client *http.Client
	Files  FileWriter

	GitHubAPI     string
	CurseForgeAPI string

	GitHubToken     string
	CurseForgeToken string

	// LocalRoot is the trusted root that local source paths resolve against.
	LocalRoot string
}

// NewProviders builds the Providers bundle from the tool config and secrets.
func NewProviders(cfg *config.Config, secrets config.Secrets) *Providers {
	return &Providers{
		Client:          &http.Client{Timeout: requestTimeout},
		Files:           &OSFileWriter{},
		GitHubAPI:       cfg.GitHubAPI,
		CurseForgeAPI:   cfg.CurseForgeAPI,
		GitHubToken:     secrets.GitHubToken,
		CurseForgeToken: secrets.CurseForgeToken,
		LocalRoot:       cfg.LocalRoot,
	}
}

// get issues a single GET with the given headers and returns the body.
// Any non-200 status is an error carrying the response text.
func (p *Providers) get(url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetching %s: HTTP %d — %s", url, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return io.ReadAll(resp.Body)
}
