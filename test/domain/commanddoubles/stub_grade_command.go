//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/corrigir/internal/domain/commands"
	"github.com/rios0rios0/corrigir/internal/domain/entities"
)

// StubGradeCommand is a stub implementation of commands.Grade.
type StubGradeCommand struct {
	ExecuteCallCount int
	Output           entities.GradeOutput
	ExecuteErr       error
	LastInput        entities.GradeInput
}

var _ commands.Grade = (*StubGradeCommand)(nil)

func (s *StubGradeCommand) Execute(
	_ context.Context,
	input entities.GradeInput,
) (entities.GradeOutput, error) {
	s.ExecuteCallCount++
	s.LastInput = input
	return s.Output, s.ExecuteErr
}
