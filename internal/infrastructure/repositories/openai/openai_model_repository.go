package openai

import (
	"context"
	"fmt"
	"strings"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
	"github.com/rios0rios0/corrigir/internal/domain/repositories"
)

// OpenAIModelRepository implements repositories.ModelRepository over the chat-completions API.
type OpenAIModelRepository struct {
	client    oai.Client
	model     string
	maxTokens int64
}

// NewOpenAIModelRepository creates a chat-completion client from the model settings.
// Retries are disabled: a failed call fails the request.
func NewOpenAIModelRepository(settings entities.ModelSettings) repositories.ModelRepository {
	options := []option.RequestOption{
		option.WithAPIKey(settings.Token),
		option.WithMaxRetries(0),
	}
	if settings.BaseURL != "" {
		options = append(options, option.WithBaseURL(strings.TrimSuffix(settings.BaseURL, "/")+"/"))
	}

	return &OpenAIModelRepository{
		client:    oai.NewClient(options...),
		model:     settings.Name,
		maxTokens: int64(settings.MaxTokens),
	}
}

func (p *OpenAIModelRepository) Complete(ctx context.Context, request entities.ChatRequest) (string, error) {
	logger.Infof("Sending %d prompt characters to OpenAI model %q", len(request.Prompt), p.model)

	resp, err := p.client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model: oai.ChatModel(p.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.SystemMessage(request.Instruction),
			oai.UserMessage(request.Prompt),
		},
		MaxTokens: oai.Int(p.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", entities.ErrModelCall, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", entities.ErrModelCall)
	}

	return resp.Choices[0].Message.Content, nil
}
