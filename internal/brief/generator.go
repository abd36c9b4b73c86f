// Package brief writes the regional morning and evening market briefs.
package brief

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"litmus/internal/config"
	"litmus/internal/model"
	"litmus/pkg/llm"
	"litmus/pkg/news"
)

const (
	maxTokens     = 1024
	headlineLimit = 8
)

type MarketSource interface {
	Global(ctx context.Context) (*model.GlobalMarket, error)
	Prices(ctx context.Context, ids ...string) (map[string]model.PriceQuote, error)
}

type Store interface {
	SaveBrief(brief *model.Brief) (string, error)
}

type Archiver interface {
	SaveContent(ctx context.Context, kind, region, contentType string, doc any) (int64, error)
}

type Generator struct {
	source    MarketSource
	llm       llm.Generator
	store     Store
	model     string
	headlines []news.NewsClient
	archive   Archiver
	now       func() time.Time
}

func NewGenerator(source MarketSource, gen llm.Generator, store Store, model string) *Generator {
	return &Generator{
		source: source,
		llm:    gen,
		store:  store,
		model:  model,
		now:    time.Now,
	}
}

// WithHeadlines adds recent headlines from clients to the prompt. Headline failures never
// fail the brief.
func (g *Generator) WithHeadlines(clients []news.NewsClient) *Generator {
	g.headlines = clients
	return g
}

func (g *Generator) WithArchive(archive Archiver) *Generator {
	g.archive = archive
	return g
}

// Generate fetches market figures, asks the model for the brief and returns it with the
// metadata attached. Nothing is written.
func (g *Generator) Generate(ctx context.Context, region, briefType string) (*model.Brief, error) {
	if err := config.ValidateBriefTarget(region, briefType); err != nil {
		return nil, err
	}

	data, err := g.fetchMarket(ctx)
	if err != nil {
		return nil, err
	}

	var headlines []news.Article
	if len(g.headlines) > 0 {
		headlines = news.Collect(ctx, g.headlines, headlineLimit)
	}

	resp, err := g.llm.Generate(ctx, llm.Request{
		Prompt:    buildPrompt(region, briefType, data, headlines),
		Model:     g.model,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate %s %s brief: %w", region, briefType, err)
	}

	var reply struct {
		Headline string            `json:"headline"`
		Sections map[string]string `json:"sections"`
	}
	if err := llm.DecodeJSON(resp.Text, &reply); err != nil {
		return nil, fmt.Errorf("decode %s %s brief: %w", region, briefType, err)
	}

	if missing := missingSections(briefType, reply.Sections); len(missing) > 0 {
		slog.Warn("brief is missing sections", "region", region, "type", briefType, "missing", missing)
	}

	return &model.Brief{
		Headline:       reply.Headline,
		Sections:       reply.Sections,
		Region:         region,
		Type:           briefType,
		GeneratedAt:    model.FormatTimestamp(g.now()),
		BTCPrice:       data.BTCPrice,
		ETHPrice:       data.ETHPrice,
		TotalMarketCap: data.TotalMarketCap,
		BTC24hChange:   data.BTC24hChange,
	}, nil
}

// Publish generates the brief and replaces the stored document for region and briefType.
func (g *Generator) Publish(ctx context.Context, region, briefType string) (*model.Brief, string, error) {
	slog.Info("generating brief", "region", region, "type", briefType, "model", g.model, "provider", g.llm.Name())

	brief, err := g.Generate(ctx, region, briefType)
	if err != nil {
		return nil, "", err
	}

	path, err := g.store.SaveBrief(brief)
	if err != nil {
		return nil, "", fmt.Errorf("save %s %s brief: %w", region, briefType, err)
	}
	slog.Info("brief saved", "region", region, "type", briefType, "path", path, "headline", brief.Headline)

	if g.archive != nil {
		if _, err := g.archive.SaveContent(ctx, model.ContentBrief, region, briefType, brief); err != nil {
			slog.Error("error archiving brief", "region", region, "type", briefType, "error", err)
		}
	}

	return brief, path, nil
}

func (g *Generator) fetchMarket(ctx context.Context) (marketData, error) {
	quotes, err := g.source.Prices(ctx, "bitcoin", "ethereum")
	if err != nil {
		return marketData{}, fmt.Errorf("fetch prices: %w", err)
	}

	global, err := g.source.Global(ctx)
	if err != nil {
		return marketData{}, fmt.Errorf("fetch global market: %w", err)
	}

	btc := quotes["bitcoin"]
	eth := quotes["ethereum"]
	return marketData{
		BTCPrice:           btc.USD,
		BTC24hChange:       btc.Change24h,
		ETHPrice:           eth.USD,
		ETH24hChange:       eth.Change24h,
		TotalMarketCap:     global.TotalMarketCap,
		MarketCapChange24h: global.MarketCapChange24h,
	}, nil
}

func missingSections(briefType string, sections map[string]string) []string {
	want := MorningSections
	if briefType == model.BriefEvening {
		want = EveningSections
	}

	var missing []string
	for _, key := range want {
		if sections[key] == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
