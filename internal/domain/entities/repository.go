package entities

import (
	"fmt"
	"regexp"
	"strings"

	gitforgeEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
)

// HostKind identifies which source-host protocol serves a repository.
type HostKind string

const (
	// HostGitHub serves the whole tree in one recursive listing and base64-encoded file bodies.
	HostGitHub HostKind = "github"
	// HostGitLab is listed one directory at a time and serves raw file bodies.
	HostGitLab HostKind = "gitlab"
)

const (
	gitHubMarker = "github.com"
	gitLabMarker = "gitlab.com"

	// sentence punctuation that may follow a URL written inside prose
	trailingPunctuation = `.,;:!)]}"'`
)

var (
	gitHubURLPattern = regexp.MustCompile(`github\.com[:/]([^/\s]+)/([^/\s#?]+)`)
	gitLabURLPattern = regexp.MustCompile(`gitlab\.com[:/]([^\s#?]+)`)
)

// File is re-exported from gitforge. IsDir distinguishes traversal nodes from content-bearing files.
type File = gitforgeEntities.File

// FileEntry is one node of a repository listing.
type FileEntry = File

// RepositoryReference points at one hosted repository.
type RepositoryReference struct {
	Kind   HostKind
	Owner  string // user, organization or (nested) group
	Name   string
	Branch string // empty until resolved by the source host
}

// FullName returns "owner/name", which is also the GitLab project path.
func (r RepositoryReference) FullName() string {
	return r.Owner + "/" + r.Name
}

func (r RepositoryReference) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.FullName())
}

// ContainsHostMarker reports whether the text mentions a supported source host.
func ContainsHostMarker(text string) bool {
	return strings.Contains(text, gitHubMarker) || strings.Contains(text, gitLabMarker)
}

// ParseRepositoryURL extracts the first repository reference found in rawURL.
// The URL may be embedded in surrounding text, use SSH form, or carry a ".git" suffix.
func ParseRepositoryURL(rawURL string) (RepositoryReference, error) {
	switch {
	case strings.Contains(rawURL, gitHubMarker):
		return parseGitHubURL(rawURL)
	case strings.Contains(rawURL, gitLabMarker):
		return parseGitLabURL(rawURL)
	default:
		return RepositoryReference{}, fmt.Errorf("%w: unsupported host in %q", ErrInvalidReference, rawURL)
	}
}

func parseGitHubURL(rawURL string) (RepositoryReference, error) {
	match := gitHubURLPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return RepositoryReference{}, fmt.Errorf("%w: invalid GitHub URL %q", ErrInvalidReference, rawURL)
	}

	name := strings.TrimSuffix(strings.TrimRight(match[2], trailingPunctuation), ".git")
	if name == "" {
		return RepositoryReference{}, fmt.Errorf("%w: invalid GitHub URL %q", ErrInvalidReference, rawURL)
	}

	return RepositoryReference{Kind: HostGitHub, Owner: match[1], Name: name}, nil
}

func parseGitLabURL(rawURL string) (RepositoryReference, error) {
	match := gitLabURLPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return RepositoryReference{}, fmt.Errorf("%w: invalid GitLab URL %q", ErrInvalidReference, rawURL)
	}

	// "/-/" starts GitLab's UI routes (tree, blob, merge_requests...)
	projectPath, _, _ := strings.Cut(match[1], "/-/")
	projectPath = strings.TrimRight(projectPath, trailingPunctuation)
	projectPath = strings.TrimSuffix(strings.Trim(projectPath, "/"), ".git")

	idx := strings.LastIndex(projectPath, "/")
	if idx <= 0 || idx == len(projectPath)-1 {
		return RepositoryReference{}, fmt.Errorf("%w: invalid GitLab URL %q", ErrInvalidReference, rawURL)
	}

	return RepositoryReference{
		Kind:  HostGitLab,
		Owner: projectPath[:idx],
		Name:  projectPath[idx+1:],
	}, nil
}
