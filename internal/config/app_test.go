package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfig_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("QUESTION_STRATEGY", "")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("RESULTS_DIR", "")

	cfg := LoadAppConfig()

	assert.Equal(t, StrategyTemplated, cfg.Session.Strategy)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "results", cfg.Storage.ResultsDir)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
}

func TestValidate_TemplatedNeedsNoKey(t *testing.T) {
	cfg := &AppConfig{
		Session: SessionConfig{Strategy: StrategyTemplated},
		Storage: StorageConfig{Backend: BackendFile},
	}
	require.NoError(t, cfg.Validate())
}

func TestValidate_GenerativeRequiresRealKey(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		ok     bool
	}{
		{"missing key", "", false},
		{"placeholder key", "your_openai_api_key_here", false},
		{"real key", "sk-proj-abc123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &AppConfig{
				OpenAI: OpenAIConfig{
					APIKey:      tt.apiKey,
					MaxTokens:   2000,
					Temperature: 0.7,
				},
				Session: SessionConfig{Strategy: StrategyGenerative},
				Storage: StorageConfig{Backend: BackendFile},
			}
			if tt.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}

func TestValidate_RejectsUnknownValues(t *testing.T) {
	cfg := &AppConfig{
		Session: SessionConfig{Strategy: "psychic"},
		Storage: StorageConfig{Backend: BackendFile},
	}
	assert.Error(t, cfg.Validate())

	cfg = &AppConfig{
		Session: SessionConfig{Strategy: StrategyTemplated},
		Storage: StorageConfig{Backend: "tape"},
	}
	assert.Error(t, cfg.Validate())
}
