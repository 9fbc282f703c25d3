//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
	"github.com/rios0rios0/corrigir/internal/domain/repositories"
)

// StubModelRepository implements repositories.ModelRepository with a canned answer.
type StubModelRepository struct {
	Answer      string
	CompleteErr error
	Requests    []entities.ChatRequest
}

var _ repositories.ModelRepository = (*StubModelRepository)(nil)

func (s *StubModelRepository) Complete(_ context.Context, request entities.ChatRequest) (string, error) {
	s.Requests = append(s.Requests, request)
	return s.Answer, s.CompleteErr
}
