package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	logger "github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
	"github.com/rios0rios0/corrigir/internal/domain/repositories"
)

// GeminiModelRepository implements repositories.ModelRepository over the Gemini API.
type GeminiModelRepository struct {
	apiKey    string
	model     string
	maxTokens int32
}

// NewGeminiModelRepository creates a Gemini backend from the model settings.
func NewGeminiModelRepository(settings entities.ModelSettings) repositories.ModelRepository {
	return &GeminiModelRepository{
		apiKey:    settings.Token,
		model:     settings.Name,
		maxTokens: int32(settings.MaxTokens), //nolint:gosec // bounded by configuration
	}
}

func (p *GeminiModelRepository) Complete(ctx context.Context, request entities.ChatRequest) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create Gemini client: %w", entities.ErrModelCall, err)
	}
	defer client.Close()

	model := client.GenerativeModel(p.model)
	model.SetMaxOutputTokens(p.maxTokens)
	model.SystemInstruction = genai.NewUserContent(genai.Text(request.Instruction))

	logger.Infof("Sending %d prompt characters to Gemini model %q", len(request.Prompt), p.model)

	resp, err := model.GenerateContent(ctx, genai.Text(request.Prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %w", entities.ErrModelCall, err)
	}

	return firstCandidateText(resp)
}

// firstCandidateText joins the text parts of the first candidate.
func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no content generated", entities.ErrModelCall)
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}
	if builder.Len() == 0 {
		return "", fmt.Errorf("%w: no text in first candidate", entities.ErrModelCall)
	}

	return builder.String(), nil
}
