//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/corrigir/internal/domain/repositories"
)

// StubPageRendererRepository implements repositories.PageRendererRepository with canned HTML.
type StubPageRendererRepository struct {
	HTML         string
	RenderErr    error
	RenderedURLs []string
}

var _ repositories.PageRendererRepository = (*StubPageRendererRepository)(nil)

func (s *StubPageRendererRepository) Render(_ context.Context, url string) (string, error) {
	s.RenderedURLs = append(s.RenderedURLs, url)
	return s.HTML, s.RenderErr
}
