//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/corrigir/internal/domain/commands"
	"github.com/rios0rios0/corrigir/internal/domain/entities"
)

// StubAggregateCommand is a stub implementation of commands.Aggregate.
type StubAggregateCommand struct {
	ExecuteCallCount int
	Document         *entities.AggregatedDocument
	ExecuteErr       error
	LastURL          string
}

var _ commands.Aggregate = (*StubAggregateCommand)(nil)

func (s *StubAggregateCommand) Execute(
	_ context.Context,
	repoURL string,
) (*entities.AggregatedDocument, error) {
	s.ExecuteCallCount++
	s.LastURL = repoURL
	return s.Document, s.ExecuteErr
}
