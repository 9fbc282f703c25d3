package entities_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
)

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestResolveToken(t *testing.T) {
	t.Run("should return empty string for empty input", func(t *testing.T) {
		t.Parallel()

		// given
		raw := ""

		// when
		result := entities.ResolveToken(raw)

		// then
		assert.Empty(t, result)
	})

	t.Run("should return inline token unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "sk-abc123xyz"

		// when
		result := entities.ResolveToken(raw)

		// then
		assert.Equal(t, "sk-abc123xyz", result)
	})

	t.Run("should expand environment variable reference", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_TOKEN_RESOLVE", "my-secret-token")
		raw := "${TEST_TOKEN_RESOLVE}"

		// when
		result := entities.ResolveToken(raw)

		// then
		assert.Equal(t, "my-secret-token", result)
	})

	t.Run("should return empty for unset env var", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "${DEFINITELY_NOT_SET_VAR_12345}"

		// when
		result := entities.ResolveToken(raw)

		// then
		assert.Empty(t, result)
	})

	t.Run("should read token from file when path exists", func(t *testing.T) {
		t.Parallel()

		// given
		tokenFile := filepath.Join(t.TempDir(), "token.key")
		err := os.WriteFile(tokenFile, []byte("  file-based-token  \n"), 0o600)
		require.NoError(t, err)

		// when
		result := entities.ResolveToken(tokenFile)

		// then
		assert.Equal(t, "file-based-token", result)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("should fail for an unknown model provider", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &entities.Settings{Model: entities.ModelSettings{Provider: "llama", Token: "tok"}}

		// when
		err := entities.Validate(settings)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model.provider")
	})

	t.Run("should pass without a model token", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &entities.Settings{Model: entities.ModelSettings{Provider: entities.ModelProviderOpenAI}}

		// when
		err := entities.Validate(settings)

		// then
		require.NoError(t, err)
	})

	t.Run("should pass without source-host tokens", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &entities.Settings{Model: entities.ModelSettings{Provider: entities.ModelProviderGemini, Token: "tok"}}

		// when
		err := entities.Validate(settings)

		// then
		require.NoError(t, err)
	})
}

func TestSettings_ValidateModel(t *testing.T) {
	t.Parallel()

	t.Run("should fail when the model token is empty", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &entities.Settings{Model: entities.ModelSettings{Provider: entities.ModelProviderOpenAI}}

		// when
		err := settings.ValidateModel()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model.token is required")
	})

	t.Run("should pass when the model token is set", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &entities.Settings{Model: entities.ModelSettings{Provider: entities.ModelProviderGemini, Token: "tok"}}

		// when
		err := settings.ValidateModel()

		// then
		require.NoError(t, err)
	})
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should load a complete settings file", func(t *testing.T) {
		t.Parallel()

		// given
		cfgFile := filepath.Join(t.TempDir(), "corrigir.yaml")
		content := `
server:
  port: "8080"
  allowed_origins: ["https://app.example.com"]
providers:
  github:
    token: "ghp_test_token"
    default_branch: "master"
  gitlab:
    token: "glpat_test_token"
model:
  provider: openai
  name: gpt-4o
  token: "sk-test"
  max_tokens: 2000
aggregation:
  max_files: 20
  max_chars: 25000
renderer:
  url: "https://docs.example.com/home"
  exec_path: /usr/bin/chromium-browser
  navigation_timeout: 240s
  settle_delay: 5s
`
		require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o600))

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "8080", settings.Server.Port)
		assert.Equal(t, []string{"https://app.example.com"}, settings.Server.AllowedOrigins)
		assert.Equal(t, "ghp_test_token", settings.Providers.GitHub.Token)
		assert.Equal(t, "master", settings.Providers.GitHub.DefaultBranch)
		assert.Equal(t, "glpat_test_token", settings.Providers.GitLab.Token)
		assert.Equal(t, "gpt-4o", settings.Model.Name)
		assert.Equal(t, 2000, settings.Model.MaxTokens)
		assert.Equal(t, 20, settings.Aggregation.MaxFiles)
		assert.Equal(t, 25000, settings.Aggregation.MaxChars)
		assert.Equal(t, "https://docs.example.com/home", settings.Renderer.URL)
		assert.Equal(t, 240*time.Second, settings.Renderer.NavigationTimeout)
		assert.Equal(t, 5*time.Second, settings.Renderer.SettleDelay)
	})

	t.Run("should fill defaults for omitted keys", func(t *testing.T) {
		t.Parallel()

		// given
		cfgFile := filepath.Join(t.TempDir(), "corrigir.yaml")
		content := `
model:
  token: "sk-test"
`
		require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o600))

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "5000", settings.Server.Port)
		assert.Equal(t, []string{"*"}, settings.Server.AllowedOrigins)
		assert.Equal(t, "main", settings.Providers.GitHub.DefaultBranch)
		assert.Equal(t, entities.ModelProviderOpenAI, settings.Model.Provider)
		assert.Equal(t, "gpt-4o-mini", settings.Model.Name)
		assert.Equal(t, 1000, settings.Model.MaxTokens)
		assert.Equal(t, 50, settings.Aggregation.MaxFiles)
		assert.Equal(t, 100000, settings.Aggregation.MaxChars)
		assert.Equal(t, 60*time.Second, settings.Renderer.NavigationTimeout)
	})

	t.Run("should expand env vars in tokens during load", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_LOAD_MODEL_TOKEN", "expanded-token-value")
		cfgFile := filepath.Join(t.TempDir(), "corrigir.yaml")
		content := `
model:
  token: "${TEST_LOAD_MODEL_TOKEN}"
`
		require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o600))

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "expanded-token-value", settings.Model.Token)
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		cfgFile := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := entities.NewSettings(cfgFile)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail for invalid YAML", func(t *testing.T) {
		t.Parallel()

		// given
		cfgFile := filepath.Join(t.TempDir(), "corrigir.yaml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("model: [unclosed"), 0o600))

		// when
		_, err := entities.NewSettings(cfgFile)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestNewSettingsFromEnv(t *testing.T) {
	t.Run("should read OpenAI settings from the environment", func(t *testing.T) {
		// given
		t.Setenv("PORT", "7000")
		t.Setenv("MODEL_PROVIDER", "")
		t.Setenv("MODEL_NAME", "")
		t.Setenv("OPENAI_API_KEY", "sk-env")
		t.Setenv("GITHUB_TOKEN", "ghp-env")
		t.Setenv("GITLAB_TOKEN", "glpat-env")

		// when
		settings, err := entities.NewSettingsFromEnv()

		// then
		require.NoError(t, err)
		assert.Equal(t, "7000", settings.Server.Port)
		assert.Equal(t, entities.ModelProviderOpenAI, settings.Model.Provider)
		assert.Equal(t, "sk-env", settings.Model.Token)
		assert.Equal(t, "ghp-env", settings.Providers.GitHub.Token)
		assert.Equal(t, "glpat-env", settings.Providers.GitLab.Token)
	})

	t.Run("should read the Gemini key when Gemini is selected", func(t *testing.T) {
		// given
		t.Setenv("MODEL_PROVIDER", "gemini")
		t.Setenv("MODEL_NAME", "")
		t.Setenv("GEMINI_API_KEY", "gm-env")

		// when
		settings, err := entities.NewSettingsFromEnv()

		// then
		require.NoError(t, err)
		assert.Equal(t, "gm-env", settings.Model.Token)
		assert.Equal(t, "gemini-2.5-flash", settings.Model.Name)
	})

	t.Run("should load without a model key for aggregation only", func(t *testing.T) {
		// given
		t.Setenv("MODEL_PROVIDER", "")
		t.Setenv("OPENAI_API_KEY", "")

		// when
		settings, err := entities.NewSettingsFromEnv()

		// then
		require.NoError(t, err)
		assert.Empty(t, settings.Model.Token)
		require.Error(t, settings.ValidateModel())
	})

	t.Run("should fail for an unknown model provider", func(t *testing.T) {
		// given
		t.Setenv("MODEL_PROVIDER", "llama")

		// when
		_, err := entities.NewSettingsFromEnv()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model.provider must be")
	})
}

func TestConfigSearchPaths(t *testing.T) {
	t.Parallel()

	t.Run("should try the working directory first with hidden names before plain ones", func(t *testing.T) {
		t.Parallel()

		// when
		candidates := entities.ConfigSearchPaths()

		// then
		require.GreaterOrEqual(t, len(candidates), 12)
		assert.Equal(t, []string{
			".corrigir.yaml",
			".corrigir.yml",
			"corrigir.yaml",
			"corrigir.yml",
		}, candidates[:4])
		assert.Contains(t, candidates, filepath.Join("configs", "corrigir.yml"))
		assert.Contains(t, candidates, filepath.Join(".config", ".corrigir.yaml"))
	})
}
