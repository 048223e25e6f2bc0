package config

import (
	"fmt"
	"os"
	"strconv"
)

// Question supplier strategies.
const (
	StrategyTemplated  = "templated"
	StrategyGenerative = "generative"
)

// Transcript storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Placeholder value shipped in .env.example; treated the same as an
// unset API key.
const apiKeyPlaceholder = "your_openai_api_key_here"

type AppConfig struct {
	OpenAI  OpenAIConfig
	Session SessionConfig
	Storage StorageConfig
	Log     LogConfig
}

type OpenAIConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
}

type SessionConfig struct {
	// Strategy selects the question supplier: StrategyTemplated or
	// StrategyGenerative.
	Strategy string
	// QuestionBankFile optionally overrides the built-in fixed
	// question templates with a YAML file.
	QuestionBankFile string
}

type StorageConfig struct {
	Backend    string
	ResultsDir string
	SQLitePath string
}

type LogConfig struct {
	Level  string
	Format string
}

// LoadAppConfig reads the application configuration from environment
// variables, applying defaults for everything but the API key.
func LoadAppConfig() *AppConfig {
	return &AppConfig{
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			MaxTokens:   getEnvAsInt("OPENAI_MAX_TOKENS", 2000),
			Temperature: getEnvAsFloat("OPENAI_TEMPERATURE", 0.7),
		},
		Session: SessionConfig{
			Strategy:         getEnv("QUESTION_STRATEGY", StrategyTemplated),
			QuestionBankFile: getEnv("QUESTION_BANK_FILE", ""),
		},
		Storage: StorageConfig{
			Backend:    getEnv("STORAGE_BACKEND", BackendFile),
			ResultsDir: getEnv("RESULTS_DIR", "results"),
			SQLitePath: getEnv("SQLITE_PATH", "talentscout.db"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}
}

// Validate checks the configuration before any candidate interaction.
// The generative strategy requires a real API key; a missing or
// placeholder key is a startup error, not a mid-conversation one.
func (c *AppConfig) Validate() error {
	switch c.Session.Strategy {
	case StrategyTemplated, StrategyGenerative:
	default:
		return fmt.Errorf("QUESTION_STRATEGY must be %q or %q, got %q",
			StrategyTemplated, StrategyGenerative, c.Session.Strategy)
	}

	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q",
			BackendFile, BackendSQLite, c.Storage.Backend)
	}

	if c.Session.Strategy == StrategyGenerative {
		if c.OpenAI.APIKey == "" || c.OpenAI.APIKey == apiKeyPlaceholder {
			return fmt.Errorf("OPENAI_API_KEY is not configured: set it in .env before starting a session")
		}
		if c.OpenAI.MaxTokens <= 0 {
			return fmt.Errorf("OPENAI_MAX_TOKENS must be positive")
		}
		if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
			return fmt.Errorf("OPENAI_TEMPERATURE must be between 0 and 2")
		}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
