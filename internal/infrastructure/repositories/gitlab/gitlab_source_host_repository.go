package gitlab

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
	"github.com/rios0rios0/corrigir/internal/domain/repositories"
)

const (
	perPage  = 100
	treeType = "tree"
)

// GitLabSourceHostRepository implements repositories.SourceHostRepository for GitLab.
// The default branch is resolved per project, directories are listed one at a time
// and file bodies are fetched raw.
type GitLabSourceHostRepository struct {
	client *gl.Client
}

// NewGitLabSourceHostRepository creates a GitLab source host from its settings.
// Retries are disabled: a failed call fails the aggregation.
func NewGitLabSourceHostRepository(
	settings entities.SourceHostSettings,
) (repositories.SourceHostRepository, error) {
	options := []gl.ClientOptionFunc{gl.WithoutRetries()}
	if settings.BaseURL != "" {
		options = append(options, gl.WithBaseURL(settings.BaseURL))
	}

	client, err := gl.NewClient(settings.Token, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}

	return &GitLabSourceHostRepository{client: client}, nil
}

func (p *GitLabSourceHostRepository) Kind() entities.HostKind { return entities.HostGitLab }

// ResolveReference looks up the project's default branch.
func (p *GitLabSourceHostRepository) ResolveReference(
	ctx context.Context,
	ref entities.RepositoryReference,
) (entities.RepositoryReference, error) {
	if ref.Branch != "" {
		return ref, nil
	}

	project, _, err := p.client.Projects.GetProject(ref.FullName(), nil, gl.WithContext(ctx))
	if err != nil {
		return ref, fmt.Errorf("%w: failed to get project %s: %w", entities.ErrUpstreamFetch, ref, err)
	}
	if project.DefaultBranch == "" {
		return ref, fmt.Errorf("%w: project %s has no default branch", entities.ErrUpstreamFetch, ref)
	}

	ref.Branch = project.DefaultBranch
	logger.Debugf("Resolved default branch of %s: %s", ref, ref.Branch)
	return ref, nil
}

func (p *GitLabSourceHostRepository) ListFiles(
	ctx context.Context,
	ref entities.RepositoryReference,
	filter entities.PathFilter,
) ([]entities.FileEntry, error) {
	return entities.WalkTree(ctx, func(ctx context.Context, dir string) ([]entities.FileEntry, error) {
		return p.listDirectory(ctx, ref, dir)
	}, filter)
}

// listDirectory lists the direct children of dir, following pagination.
func (p *GitLabSourceHostRepository) listDirectory(
	ctx context.Context,
	ref entities.RepositoryReference,
	dir string,
) ([]entities.FileEntry, error) {
	recursive := false
	opts := &gl.ListTreeOptions{
		ListOptions: gl.ListOptions{PerPage: perPage},
		Ref:         gl.Ptr(ref.Branch),
		Recursive:   &recursive,
	}
	if dir != "" {
		opts.Path = gl.Ptr(dir)
	}

	var entries []entities.FileEntry
	for {
		nodes, resp, err := p.client.Repositories.ListTree(ref.FullName(), opts, gl.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to list %q of %s: %w", entities.ErrUpstreamFetch, dir, ref, err)
		}

		for _, node := range nodes {
			entries = append(entries, entities.FileEntry{
				Path:     node.Path,
				ObjectID: node.ID,
				IsDir:    node.Type == treeType,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return entries, nil
}

func (p *GitLabSourceHostRepository) GetFileContent(
	ctx context.Context,
	ref entities.RepositoryReference,
	path string,
) (string, error) {
	raw, _, err := p.client.RepositoryFiles.GetRawFile(
		ref.FullName(), path,
		&gl.GetRawFileOptions{Ref: gl.Ptr(ref.Branch)},
		gl.WithContext(ctx),
	)
	if err != nil {
		return "", fmt.Errorf("%w: failed to get file %q: %w", entities.ErrUpstreamFetch, path, err)
	}

	return string(raw), nil
}
