package repositories

import (
	"context"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
)

// SourceHostRepository abstracts a hosted-repository API (GitHub, GitLab)
// providing read access to a repository's file tree and file contents.
type SourceHostRepository interface {
	// Kind is the host variant this repository serves.
	Kind() entities.HostKind

	// ResolveReference fills the branch that later calls read from.
	ResolveReference(ctx context.Context, ref entities.RepositoryReference) (entities.RepositoryReference, error)

	// ListFiles returns every file of the repository, in listing order, skipping
	// entries matched by filter. Directories matched by filter are not descended.
	ListFiles(
		ctx context.Context,
		ref entities.RepositoryReference,
		filter entities.PathFilter,
	) ([]entities.FileEntry, error)

	// GetFileContent returns the decoded text of one file.
	GetFileContent(ctx context.Context, ref entities.RepositoryReference, path string) (string, error)
}
