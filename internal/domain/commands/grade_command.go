package commands

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
	"github.com/rios0rios0/corrigir/internal/domain/repositories"
)

// Grade is the interface for grading one submission.
type Grade interface {
	Execute(ctx context.Context, input entities.GradeInput) (entities.GradeOutput, error)
}

// GradeCommand expands repository submissions into their content and asks the model to grade them.
type GradeCommand struct {
	aggregate Aggregate
	model     repositories.ModelRepository
}

// NewGradeCommand creates a new GradeCommand.
func NewGradeCommand(aggregate Aggregate, model repositories.ModelRepository) *GradeCommand {
	return &GradeCommand{
		aggregate: aggregate,
		model:     model,
	}
}

// Execute sends the instruction as the system message and the submission, or the
// repository it points to, as the user message.
func (it *GradeCommand) Execute(
	ctx context.Context,
	input entities.GradeInput,
) (entities.GradeOutput, error) {
	prompt := input.Answer
	if entities.ContainsHostMarker(input.Answer) {
		logger.Info("Submission references a repository, aggregating its content")

		document, err := it.aggregate.Execute(ctx, input.Answer)
		if err != nil {
			return entities.GradeOutput{}, err
		}
		prompt = document.Text()
	}

	answer, err := it.model.Complete(ctx, entities.ChatRequest{
		Instruction: input.Instruction,
		Prompt:      prompt,
	})
	if err != nil {
		return entities.GradeOutput{}, err
	}

	return entities.GradeOutput{Result: strings.TrimSpace(answer)}, nil
}
