package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	ModelProviderOpenAI = "openai"
	ModelProviderGemini = "gemini"

	defaultPort              = "5000"
	defaultGitHubBranch      = "main"
	defaultModelName         = "gpt-4o-mini"
	defaultGeminiModelName   = "gemini-2.5-flash"
	defaultMaxTokens         = 1000
	defaultMaxFiles          = 50
	defaultMaxChars          = 100000
	defaultRendererURL       = "https://sicredi-desafio-qe.readme.io/reference/home"
	defaultNavigationTimeout = 60 * time.Second

	configBaseName = "corrigir"
)

// Settings is the process-wide configuration, built once at start and injected where needed.
type Settings struct {
	Server      ServerSettings      `yaml:"server"`
	Providers   ProvidersSettings   `yaml:"providers"`
	Model       ModelSettings       `yaml:"model"`
	Aggregation AggregationSettings `yaml:"aggregation"`
	Renderer    RendererSettings    `yaml:"renderer"`
}

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// ProvidersSettings holds one entry per source host.
type ProvidersSettings struct {
	GitHub SourceHostSettings `yaml:"github"`
	GitLab SourceHostSettings `yaml:"gitlab"`
}

// SourceHostSettings describes the credentials and endpoint of a source host.
type SourceHostSettings struct {
	Token         string `yaml:"token"`          // Inline, ${ENV_VAR}, or file path
	DefaultBranch string `yaml:"default_branch"` // GitHub only; GitLab resolves it per project
	BaseURL       string `yaml:"base_url"`       // Empty for the public SaaS endpoint
}

// ModelSettings selects and configures the chat-completion backend.
type ModelSettings struct {
	Provider  string `yaml:"provider"` // "openai" or "gemini"
	Name      string `yaml:"name"`
	Token     string `yaml:"token"`
	MaxTokens int    `yaml:"max_tokens"`
	BaseURL   string `yaml:"base_url"`
}

// AggregationSettings bounds the repository aggregation.
type AggregationSettings struct {
	MaxFiles int `yaml:"max_files"` // ceiling on fetched files, applied after filtering
	MaxChars int `yaml:"max_chars"` // cap on the rendered document length
}

// RendererSettings configures the headless browser used by the documentation proxy.
type RendererSettings struct {
	URL               string        `yaml:"url"`
	ExecPath          string        `yaml:"exec_path"`
	NavigationTimeout time.Duration `yaml:"navigation_timeout"`
	SettleDelay       time.Duration `yaml:"settle_delay"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a settings file, expanding environment variables,
// resolving token file paths and filling defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Providers.GitHub.Token = resolveToken(settings.Providers.GitHub.Token)
	settings.Providers.GitLab.Token = resolveToken(settings.Providers.GitLab.Token)
	settings.Model.Token = resolveToken(settings.Model.Token)
	settings.Server.Port = expandEnv(settings.Server.Port)
	settings.applyDefaults()

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// NewSettingsFromEnv builds settings purely from environment variables.
func NewSettingsFromEnv() (*Settings, error) {
	settings := Settings{
		Server: ServerSettings{Port: os.Getenv("PORT")},
		Providers: ProvidersSettings{
			GitHub: SourceHostSettings{Token: os.Getenv("GITHUB_TOKEN")},
			GitLab: SourceHostSettings{Token: os.Getenv("GITLAB_TOKEN")},
		},
		Model: ModelSettings{
			Provider: os.Getenv("MODEL_PROVIDER"),
			Name:     os.Getenv("MODEL_NAME"),
		},
	}
	settings.applyDefaults()

	if settings.Model.Provider == ModelProviderGemini {
		settings.Model.Token = os.Getenv("GEMINI_API_KEY")
	} else {
		settings.Model.Token = os.Getenv("OPENAI_API_KEY")
	}

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// LoadSettings uses the given file, else the first file found in the default
// locations, else the environment alone.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, reading settings from environment: %v", err)
			return NewSettingsFromEnv()
		}
		path = found
	}

	logger.Infof("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile returns the first existing settings file among configSearchPaths.
func FindConfigFile() (string, error) {
	candidates := configSearchPaths()
	for _, candidate := range candidates {
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no %s settings file among %d default locations", configBaseName, len(candidates))
}

// configSearchPaths lists the candidate settings files, working directory first,
// hidden names before plain ones and ".yaml" before ".yml".
func configSearchPaths() []string {
	dirs := []string{".", ".config", "configs"}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		dirs = append(dirs, homeDir, filepath.Join(homeDir, ".config"))
	}

	candidates := make([]string, 0, len(dirs)*4)
	for _, dir := range dirs {
		for _, prefix := range []string{".", ""} {
			for _, ext := range []string{".yaml", ".yml"} {
				candidates = append(candidates, filepath.Join(dir, prefix+configBaseName+ext))
			}
		}
	}
	return candidates
}

func (s *Settings) applyDefaults() {
	if s.Server.Port == "" {
		s.Server.Port = defaultPort
	}
	if len(s.Server.AllowedOrigins) == 0 {
		s.Server.AllowedOrigins = []string{"*"}
	}
	if s.Providers.GitHub.DefaultBranch == "" {
		s.Providers.GitHub.DefaultBranch = defaultGitHubBranch
	}
	if s.Model.Provider == "" {
		s.Model.Provider = ModelProviderOpenAI
	}
	if s.Model.Name == "" {
		s.Model.Name = defaultModelName
		if s.Model.Provider == ModelProviderGemini {
			s.Model.Name = defaultGeminiModelName
		}
	}
	if s.Model.MaxTokens <= 0 {
		s.Model.MaxTokens = defaultMaxTokens
	}
	if s.Aggregation.MaxFiles <= 0 {
		s.Aggregation.MaxFiles = defaultMaxFiles
	}
	if s.Aggregation.MaxChars <= 0 {
		s.Aggregation.MaxChars = defaultMaxChars
	}
	if s.Renderer.URL == "" {
		s.Renderer.URL = defaultRendererURL
	}
	if s.Renderer.NavigationTimeout <= 0 {
		s.Renderer.NavigationTimeout = defaultNavigationTimeout
	}
}

func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := expandEnv(raw)

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// ValidateModel checks what grading needs on top of validate. Aggregation alone
// never calls the model, so only the commands that grade require it.
func (s *Settings) ValidateModel() error {
	if s.Model.Token == "" {
		return errors.New("model.token is required (set inline, via ${ENV_VAR}, or as file path)")
	}
	return nil
}

// validate checks for required configuration values. Source-host tokens stay optional
// since public repositories can be read anonymously.
func validate(settings *Settings) error {
	switch settings.Model.Provider {
	case ModelProviderOpenAI, ModelProviderGemini:
	default:
		return fmt.Errorf(
			"model.provider must be %q or %q, got %q",
			ModelProviderOpenAI, ModelProviderGemini, settings.Model.Provider,
		)
	}

	return nil
}
