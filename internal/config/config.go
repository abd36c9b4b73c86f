// Package config reads job settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"litmus/internal/model"
	"litmus/pkg/llm"
)

var (
	ErrMissingCredential = errors.New("missing API credential")
	ErrInvalidRegion     = errors.New("invalid region")
	ErrInvalidBriefType  = errors.New("invalid brief type")
	ErrInvalidProvider   = errors.New("invalid LLM provider")
)

var defaultModels = map[string]struct{ brief, magazine string }{
	llm.ProviderAnthropic: {brief: "claude-sonnet-4-5-20250929", magazine: "claude-opus-4-5-20251101"},
	llm.ProviderOpenAI:    {brief: "gpt-4.1-mini", magazine: "gpt-4.1"},
	llm.ProviderGemini:    {brief: "gemini-2.5-flash", magazine: "gemini-2.5-pro"},
}

type Config struct {
	Region    string
	BriefType string

	ContentDir  string
	DataDir     string
	HistoryPath string

	LLMProvider     string
	AnthropicAPIKey string
	OpenAIAPIKey    string
	GeminiAPIKey    string
	BriefModel      string
	MagazineModel   string

	CoinGeckoBaseURL       string
	CoinGeckoAPIKey        string
	CoinGeckoRatePerMinute int
	HTTPTimeout            time.Duration

	FinnhubAPIKey      string
	AlphaVantageAPIKey string

	DatabaseURL string
	RedisURL    string
	CacheTTL    time.Duration

	APIAddr     string
	FrontendURL string

	CaptureSchedule string
	BriefSchedules  []BriefSchedule
	WeekendSchedule string
}

// BriefSchedule pairs a cron spec with the brief it triggers.
type BriefSchedule struct {
	Spec      string
	Region    string
	BriefType string
}

// Load reads the environment. Call godotenv.Load first to pick up a .env file.
func Load() (*Config, error) {
	dataDir := getEnv("DATA_DIR", "data")
	provider := strings.ToLower(getEnv("LLM_PROVIDER", llm.ProviderAnthropic))

	timeout, err := getDuration("HTTP_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getDuration("CACHE_TTL", 2*time.Minute)
	if err != nil {
		return nil, err
	}
	ratePerMinute, err := getInt("COINGECKO_RATE_PER_MINUTE", 30)
	if err != nil {
		return nil, err
	}
	briefSchedules, err := parseBriefSchedules(getEnv("BRIEF_SCHEDULES", defaultBriefSchedules))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Region:    strings.ToLower(getEnv("REGION", model.RegionAmericas)),
		BriefType: strings.ToLower(getEnv("BRIEF_TYPE", model.BriefMorning)),

		ContentDir:  getEnv("CONTENT_DIR", "content"),
		DataDir:     dataDir,
		HistoryPath: getEnv("MOOD_HISTORY_FILE", filepath.Join(dataDir, "mood-history.json")),

		LLMProvider:     provider,
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),

		CoinGeckoBaseURL:       getEnv("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3"),
		CoinGeckoAPIKey:        os.Getenv("COINGECKO_API_KEY"),
		CoinGeckoRatePerMinute: ratePerMinute,
		HTTPTimeout:            timeout,

		FinnhubAPIKey:      os.Getenv("FINNHUB_API_KEY"),
		AlphaVantageAPIKey: os.Getenv("ALPHA_VANTAGE_API_KEY"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		CacheTTL:    cacheTTL,

		APIAddr:     getEnv("API_ADDR", ":8080"),
		FrontendURL: os.Getenv("FRONTEND_URL"),

		CaptureSchedule: getEnv("CAPTURE_SCHEDULE", "5 * * * *"),
		BriefSchedules:  briefSchedules,
		WeekendSchedule: getEnv("WEEKEND_SCHEDULE", "0 23 * * 5"),
	}

	models := defaultModels[provider]
	cfg.BriefModel = getEnv("BRIEF_MODEL", models.brief)
	cfg.MagazineModel = getEnv("MAGAZINE_MODEL", models.magazine)

	return cfg, nil
}

// ValidateBrief checks the region and cadence selected for the brief job.
func (c *Config) ValidateBrief() error {
	return ValidateBriefTarget(c.Region, c.BriefType)
}

func ValidateBriefTarget(region, briefType string) error {
	if !slices.Contains(model.Regions, region) {
		return fmt.Errorf("%w %q: want one of %s", ErrInvalidRegion, region, strings.Join(model.Regions, ", "))
	}
	if !slices.Contains(model.BriefTypes, briefType) {
		return fmt.Errorf("%w %q: want one of %s", ErrInvalidBriefType, briefType, strings.Join(model.BriefTypes, ", "))
	}
	return nil
}

// LLMKey returns the API key for the configured provider, failing when it is absent.
func (c *Config) LLMKey() (string, error) {
	var name, key string
	switch c.LLMProvider {
	case llm.ProviderAnthropic:
		name, key = "ANTHROPIC_API_KEY", c.AnthropicAPIKey
	case llm.ProviderOpenAI:
		name, key = "OPENAI_API_KEY", c.OpenAIAPIKey
	case llm.ProviderGemini:
		name, key = "GEMINI_API_KEY", c.GeminiAPIKey
	default:
		return "", fmt.Errorf("%w %q", ErrInvalidProvider, c.LLMProvider)
	}

	if key == "" {
		return "", fmt.Errorf("%w: %s environment variable not set", ErrMissingCredential, name)
	}
	return key, nil
}

// Cron specs are UTC. Morning briefs land at 06:00 local time in each region and evening
// updates at 18:00.
const defaultBriefSchedules = "0 22 * * *=apac/morning;0 6 * * *=emea/morning;0 11 * * *=americas/morning;" +
	"0 10 * * *=apac/evening;0 18 * * *=emea/evening;0 23 * * *=americas/evening"

// parseBriefSchedules reads "spec=region/type" entries separated by semicolons.
func parseBriefSchedules(raw string) ([]BriefSchedule, error) {
	var out []BriefSchedule
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		spec, target, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("BRIEF_SCHEDULES entry %q: missing '='", entry)
		}
		region, briefType, ok := strings.Cut(strings.TrimSpace(target), "/")
		if !ok {
			return nil, fmt.Errorf("BRIEF_SCHEDULES entry %q: target must be region/type", entry)
		}
		if err := ValidateBriefTarget(region, briefType); err != nil {
			return nil, fmt.Errorf("BRIEF_SCHEDULES entry %q: %w", entry, err)
		}

		out = append(out, BriefSchedule{Spec: strings.TrimSpace(spec), Region: region, BriefType: briefType})
	}
	return out, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
