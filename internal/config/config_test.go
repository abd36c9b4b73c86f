package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"REGION", "BRIEF_TYPE", "CONTENT_DIR", "DATA_DIR", "MOOD_HISTORY_FILE", "LLM_PROVIDER",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "BRIEF_MODEL", "MAGAZINE_MODEL",
		"COINGECKO_BASE_URL", "COINGECKO_API_KEY", "COINGECKO_RATE_PER_MINUTE", "HTTP_TIMEOUT",
		"CACHE_TTL", "BRIEF_SCHEDULES", "CAPTURE_SCHEDULE", "WEEKEND_SCHEDULE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, "americas", cfg.Region)
	assert.Equal(t, "morning", cfg.BriefType)
	assert.Equal(t, "content", cfg.ContentDir)
	assert.Equal(t, filepath.Join("data", "mood-history.json"), cfg.HistoryPath)
	assert.Equal(t, "anthropic", cfg.LLMProvider)
	assert.Equal(t, "claude-sonnet-4-5-20250929", cfg.BriefModel)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 30, cfg.CoinGeckoRatePerMinute)
	assert.Equal(t, 6, len(cfg.BriefSchedules))
	assert.Equal(t, nil, cfg.ValidateBrief())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("REGION", "APAC")
	t.Setenv("BRIEF_TYPE", "evening")
	t.Setenv("DATA_DIR", "/var/lib/litmus")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("HTTP_TIMEOUT", "10s")
	t.Setenv("BRIEF_SCHEDULES", "0 7 * * *=emea/morning")

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, "apac", cfg.Region)
	assert.Equal(t, "evening", cfg.BriefType)
	assert.Equal(t, filepath.Join("/var/lib/litmus", "mood-history.json"), cfg.HistoryPath)
	assert.Equal(t, "gpt-4.1-mini", cfg.BriefModel)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, []BriefSchedule{{Spec: "0 7 * * *", Region: "emea", BriefType: "morning"}}, cfg.BriefSchedules)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "timeout", key: "HTTP_TIMEOUT", val: "thirty"},
		{name: "cache ttl", key: "CACHE_TTL", val: "2 minutes"},
		{name: "rate", key: "COINGECKO_RATE_PER_MINUTE", val: "many"},
		{name: "schedule without target", key: "BRIEF_SCHEDULES", val: "0 7 * * *"},
		{name: "schedule with unknown region", key: "BRIEF_SCHEDULES", val: "0 7 * * *=mars/morning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()

			assert.NotEqual(t, nil, err)
		})
	}
}

func TestValidateBriefTarget(t *testing.T) {
	assert.Equal(t, nil, ValidateBriefTarget("emea", "evening"))
	assert.Equal(t, true, errors.Is(ValidateBriefTarget("mars", "morning"), ErrInvalidRegion))
	assert.Equal(t, true, errors.Is(ValidateBriefTarget("apac", "midday"), ErrInvalidBriefType))
}

func TestLLMKey(t *testing.T) {
	cfg := &Config{LLMProvider: "anthropic"}
	_, err := cfg.LLMKey()
	assert.Equal(t, true, errors.Is(err, ErrMissingCredential))

	cfg.AnthropicAPIKey = "sk-ant-test"
	key, err := cfg.LLMKey()
	assert.Equal(t, nil, err)
	assert.Equal(t, "sk-ant-test", key)

	cfg = &Config{LLMProvider: "gemini", GeminiAPIKey: "g-key"}
	key, err = cfg.LLMKey()
	assert.Equal(t, nil, err)
	assert.Equal(t, "g-key", key)

	cfg = &Config{LLMProvider: "mistral"}
	_, err = cfg.LLMKey()
	assert.Equal(t, true, errors.Is(err, ErrInvalidProvider))
}
