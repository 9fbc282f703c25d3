package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
	"github.com/rios0rios0/corrigir/internal/domain/repositories"
)

const blobType = "blob"

// GitHubSourceHostRepository implements repositories.SourceHostRepository for GitHub.
// The whole tree comes from one recursive listing; file bodies arrive base64-encoded.
type GitHubSourceHostRepository struct {
	client        *gh.Client
	defaultBranch string
}

// NewGitHubSourceHostRepository creates a GitHub source host from its settings.
// An empty token reads public repositories anonymously.
func NewGitHubSourceHostRepository(
	settings entities.SourceHostSettings,
) (repositories.SourceHostRepository, error) {
	client := gh.NewClient(nil)
	if settings.Token != "" {
		client = client.WithAuthToken(settings.Token)
	}

	if settings.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(settings.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL %q: %w", settings.BaseURL, err)
		}
		client.BaseURL = baseURL
	}

	return &GitHubSourceHostRepository{
		client:        client,
		defaultBranch: settings.DefaultBranch,
	}, nil
}

func (p *GitHubSourceHostRepository) Kind() entities.HostKind { return entities.HostGitHub }

// ResolveReference uses the configured branch without calling the API.
func (p *GitHubSourceHostRepository) ResolveReference(
	_ context.Context,
	ref entities.RepositoryReference,
) (entities.RepositoryReference, error) {
	if ref.Branch == "" {
		ref.Branch = p.defaultBranch
	}
	return ref, nil
}

func (p *GitHubSourceHostRepository) ListFiles(
	ctx context.Context,
	ref entities.RepositoryReference,
	filter entities.PathFilter,
) ([]entities.FileEntry, error) {
	tree, _, err := p.client.Git.GetTree(ctx, ref.Owner, ref.Name, ref.Branch, true)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get tree of %s@%s: %w", entities.ErrUpstreamFetch, ref, ref.Branch, err)
	}
	if tree.GetTruncated() {
		logger.Warnf("GitHub truncated the tree listing of %s", ref)
	}

	var files []entities.FileEntry
	for _, entry := range tree.Entries {
		// submodules ("commit") carry no content and directories are already flattened
		if entry.GetType() != blobType {
			continue
		}
		if filter != nil && filter.ShouldIgnore(entry.GetPath()) {
			continue
		}
		files = append(files, entities.FileEntry{
			Path:     entry.GetPath(),
			ObjectID: entry.GetSHA(),
			IsDir:    false,
		})
	}

	logger.Debugf("Listed %d files of %s (%d tree entries)", len(files), ref, len(tree.Entries))
	return files, nil
}

func (p *GitHubSourceHostRepository) GetFileContent(
	ctx context.Context,
	ref entities.RepositoryReference,
	path string,
) (string, error) {
	fileContent, _, _, err := p.client.Repositories.GetContents(
		ctx, ref.Owner, ref.Name, path,
		&gh.RepositoryContentGetOptions{Ref: ref.Branch},
	)
	if err != nil {
		return "", fmt.Errorf("%w: failed to get file %q: %w", entities.ErrUpstreamFetch, path, err)
	}
	if fileContent == nil {
		return "", fmt.Errorf("%w: path %q is a directory, not a file", entities.ErrUpstreamFetch, path)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return "", fmt.Errorf("%w: failed to decode file %q: %w", entities.ErrUpstreamFetch, path, err)
	}

	return content, nil
}
