// Package app builds the jobs from configuration so every command wires them the same way.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"litmus/db"
	"litmus/internal/brief"
	"litmus/internal/capture"
	"litmus/internal/config"
	"litmus/internal/history"
	"litmus/internal/magazine"
	"litmus/internal/repository"
	"litmus/pkg/llm"
	"litmus/pkg/market"
	"litmus/pkg/news"
)

// Deps holds the shared clients. Archive is nil when no database is configured or reachable.
type Deps struct {
	Config  *config.Config
	Market  *market.CoinGeckoClient
	Content *repository.ContentRepository
	History *history.Store
	Archive *repository.ArchiveRepository
}

// Open connects the optional Redis cache and Postgres archive. Both are best effort: a
// connection failure is logged and the jobs run on files and the live API alone.
func Open(ctx context.Context, cfg *config.Config) *Deps {
	d := &Deps{
		Config: cfg,
		Market: market.NewCoinGeckoClient(market.Config{
			BaseURL:       cfg.CoinGeckoBaseURL,
			APIKey:        cfg.CoinGeckoAPIKey,
			Timeout:       cfg.HTTPTimeout,
			RatePerMinute: cfg.CoinGeckoRatePerMinute,
		}),
		Content: repository.NewContentRepository(cfg.ContentDir, cfg.HistoryPath),
		History: history.NewStore(cfg.HistoryPath),
	}

	if cfg.RedisURL != "" {
		if err := db.ConnectRedis(ctx, cfg.RedisURL); err != nil {
			slog.Warn("redis unavailable, market responses will not be cached", "error", err)
		} else {
			d.Market.WithCache(db.NewResponseCache(db.Redis, cfg.CacheTTL))
		}
	}

	if cfg.DatabaseURL != "" {
		if err := db.Connect(cfg.DatabaseURL); err != nil {
			slog.Error("error connecting to DB, archive disabled", "error", err)
		} else {
			d.Archive = repository.NewArchiveRepository(db.DB)
		}
	}

	return d
}

func (d *Deps) Close() {
	db.CloseRedis()
	db.Close()
}

func (d *Deps) CaptureJob() *capture.Job {
	job := capture.NewJob(d.Market, d.History)
	if d.Archive != nil {
		job.WithArchive(d.Archive)
	}
	return job
}

func (d *Deps) BriefGenerator(gen llm.Generator) *brief.Generator {
	g := brief.NewGenerator(d.Market, gen, d.Content, d.Config.BriefModel).
		WithHeadlines(HeadlineClients(d.Config))
	if d.Archive != nil {
		g.WithArchive(d.Archive)
	}
	return g
}

func (d *Deps) MagazineGenerator(gen llm.Generator) *magazine.Generator {
	g := magazine.NewGenerator(d.Market, gen, d.Content, d.Config.MagazineModel)
	if d.Archive != nil {
		g.WithArchive(d.Archive)
	}
	return g
}

// NewLLM returns the client for the configured provider. model is the fallback used when a
// request does not name one.
func NewLLM(ctx context.Context, cfg *config.Config, model string) (llm.Generator, error) {
	key, err := cfg.LLMKey()
	if err != nil {
		return nil, err
	}

	switch cfg.LLMProvider {
	case llm.ProviderOpenAI:
		return llm.NewOpenAIClient(key, model), nil
	case llm.ProviderGemini:
		client, err := llm.NewGeminiClient(ctx, key, model)
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		return client, nil
	default:
		return llm.NewAnthropicClient(key, model), nil
	}
}

// HeadlineClients returns a client for every news source with a key configured.
func HeadlineClients(cfg *config.Config) []news.NewsClient {
	var clients []news.NewsClient
	if cfg.FinnhubAPIKey != "" {
		clients = append(clients, news.NewFinnHubClient(cfg.FinnhubAPIKey))
	}
	if cfg.AlphaVantageAPIKey != "" {
		clients = append(clients, news.NewAlphaVantageClient(cfg.AlphaVantageAPIKey))
	}
	return clients
}
