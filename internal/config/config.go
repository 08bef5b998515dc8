// Package config resolves API credentials and runtime settings from the
// environment, loading a .env file first when one is present.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Quote source identifiers accepted in QUOTE_SOURCE.
const (
	QuoteSourceFinanceGo = "finance-go"
	QuoteSourceYahooREST = "yahoo-rest"
)

const (
	defaultGitHubBaseURL = "https://models.github.ai/inference"
	defaultGitHubModel   = "openai/gpt-4o-mini"
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultTimeout       = 30 * time.Second
)

// ErrMissingCredentials is returned when no usable API credential is set.
var ErrMissingCredentials = errors.New(
	"missing API key: set GIT_ACCESS_TOKEN (GitHub Models) or OPENAI_API_KEY")

// Config holds everything the assistant needs to reach its collaborators.
type Config struct {
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`

	QuoteSource    string        `json:"quote_source"`
	RequestTimeout time.Duration `json:"request_timeout"`
}

// Load builds a Config from the environment. Two credential sources are
// checked in priority order: a GitHub Models access token, then an OpenAI
// API key. Whichever is present first also fixes the base URL and model
// defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		QuoteSource:    QuoteSourceFinanceGo,
		RequestTimeout: defaultTimeout,
	}

	if src := getenv("QUOTE_SOURCE"); src != "" {
		cfg.QuoteSource = src
	}
	if secs := getenv("REQUEST_TIMEOUT_SECONDS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			cfg.RequestTimeout = time.Duration(n) * time.Second
		}
	}

	if token := getenv("GIT_ACCESS_TOKEN"); token != "" {
		cfg.APIKey = token
		cfg.BaseURL = defaultGitHubBaseURL
		cfg.Model = defaultGitHubModel
		if url := getenv("GITHUB_MODELS_BASE_URL"); url != "" {
			cfg.BaseURL = url
		}
		if model := getenv("GITHUB_MODELS_MODEL"); model != "" {
			cfg.Model = model
		}
		return cfg, nil
	}

	if key := getenv("OPENAI_API_KEY"); key != "" {
		cfg.APIKey = key
		cfg.BaseURL = getenv("OPENAI_BASE_URL")
		cfg.Model = defaultOpenAIModel
		if model := getenv("OPENAI_MODEL"); model != "" {
			cfg.Model = model
		}
		return cfg, nil
	}

	return nil, ErrMissingCredentials
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
