//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/corrigir/internal/domain/commands"
)

// StubRenderPageCommand is a stub implementation of commands.RenderPage.
type StubRenderPageCommand struct {
	ExecuteCallCount int
	HTML             string
	ExecuteErr       error
}

var _ commands.RenderPage = (*StubRenderPageCommand)(nil)

func (s *StubRenderPageCommand) Execute(_ context.Context) (string, error) {
	s.ExecuteCallCount++
	return s.HTML, s.ExecuteErr
}
