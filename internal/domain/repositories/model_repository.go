package repositories

import (
	"context"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
)

// ModelRepository sends a chat exchange to a language model and returns the first answer's text.
type ModelRepository interface {
	Complete(ctx context.Context, request entities.ChatRequest) (string, error)
}
