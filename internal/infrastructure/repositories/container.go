package repositories

import (
	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
	domainRepos "github.com/rios0rios0/corrigir/internal/domain/repositories"
	chRepo "github.com/rios0rios0/corrigir/internal/infrastructure/repositories/chromium"
	gmRepo "github.com/rios0rios0/corrigir/internal/infrastructure/repositories/gemini"
	ghRepo "github.com/rios0rios0/corrigir/internal/infrastructure/repositories/github"
	glRepo "github.com/rios0rios0/corrigir/internal/infrastructure/repositories/gitlab"
	oaRepo "github.com/rios0rios0/corrigir/internal/infrastructure/repositories/openai"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register source-host registry with one client per host kind
	if err := container.Provide(func(settings *entities.Settings) (*SourceHostRegistry, error) {
		github, err := ghRepo.NewGitHubSourceHostRepository(settings.Providers.GitHub)
		if err != nil {
			return nil, err
		}
		gitlab, err := glRepo.NewGitLabSourceHostRepository(settings.Providers.GitLab)
		if err != nil {
			return nil, err
		}

		reg := NewSourceHostRegistry()
		reg.Register(github)
		reg.Register(gitlab)
		logger.Infof("Registered source hosts: %v", reg.Kinds())
		return reg, nil
	}); err != nil {
		return err
	}

	// Register the configured language model backend
	if err := container.Provide(NewModelRepository); err != nil {
		return err
	}

	// Register the headless browser
	if err := container.Provide(func(settings *entities.Settings) domainRepos.PageRendererRepository {
		return chRepo.NewChromiumPageRendererRepository(settings.Renderer)
	}); err != nil {
		return err
	}

	return nil
}

// NewModelRepository selects the chat-completion backend named by the settings.
func NewModelRepository(settings *entities.Settings) domainRepos.ModelRepository {
	if settings.Model.Provider == entities.ModelProviderGemini {
		return gmRepo.NewGeminiModelRepository(settings.Model)
	}
	return oaRepo.NewOpenAIModelRepository(settings.Model)
}
