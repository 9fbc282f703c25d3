//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
	"github.com/rios0rios0/corrigir/internal/domain/repositories"
)

// SpySourceHostRepository implements repositories.SourceHostRepository as a configurable spy.
type SpySourceHostRepository struct {
	// --- identity ---
	HostKind entities.HostKind

	// --- ResolveReference ---
	Branch        string
	ResolveErr    error
	ResolvedRefs  []entities.RepositoryReference
	ResolveCalled int

	// --- ListFiles ---
	Files       []entities.FileEntry
	ListFileErr error
	ListCalled  int

	// --- GetFileContent ---
	FileContents   map[string]string
	FileContentErr error
	FetchedPaths   []string
}

var _ repositories.SourceHostRepository = (*SpySourceHostRepository)(nil)

func (p *SpySourceHostRepository) Kind() entities.HostKind { return p.HostKind }

func (p *SpySourceHostRepository) ResolveReference(
	_ context.Context, ref entities.RepositoryReference,
) (entities.RepositoryReference, error) {
	p.ResolveCalled++
	p.ResolvedRefs = append(p.ResolvedRefs, ref)
	if p.ResolveErr != nil {
		return ref, p.ResolveErr
	}
	ref.Branch = p.Branch
	return ref, nil
}

// ListFiles applies the filter the way a flat-tree host does.
func (p *SpySourceHostRepository) ListFiles(
	_ context.Context, _ entities.RepositoryReference, filter entities.PathFilter,
) ([]entities.FileEntry, error) {
	p.ListCalled++
	if p.ListFileErr != nil {
		return nil, p.ListFileErr
	}

	var files []entities.FileEntry
	for _, file := range p.Files {
		if file.IsDir || (filter != nil && filter.ShouldIgnore(file.Path)) {
			continue
		}
		files = append(files, file)
	}
	return files, nil
}

func (p *SpySourceHostRepository) GetFileContent(
	_ context.Context, _ entities.RepositoryReference, path string,
) (string, error) {
	p.FetchedPaths = append(p.FetchedPaths, path)
	if p.FileContentErr != nil {
		return "", p.FileContentErr
	}
	if content, ok := p.FileContents[path]; ok {
		return content, nil
	}
	return "", fmt.Errorf("file not found: %s", path)
}
