// Package magazine writes the weekend magazine issue.
package magazine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"litmus/internal/model"
	"litmus/pkg/llm"
)

const (
	maxTokens   = 8000
	temperature = 0.6
	// universe is how many of the largest coins are scanned for segment members.
	universe = 50
)

type MarketSource interface {
	Global(ctx context.Context) (*model.GlobalMarket, error)
	TopCoins(ctx context.Context, perPage int, windows ...string) ([]model.CoinMarket, error)
}

type Store interface {
	SaveMagazine(magazine *model.Magazine) (string, error)
}

type Archiver interface {
	SaveContent(ctx context.Context, kind, region, contentType string, doc any) (int64, error)
}

type Generator struct {
	source  MarketSource
	llm     llm.Generator
	store   Store
	model   string
	archive Archiver
	now     func() time.Time
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

func (g *Generator) WithArchive(archive Archiver) *Generator {
	g.archive = archive
	return g
}

// Generate builds this week's issue: the model writes the hero and sections, the key dates,
// segment table and market figures are filled in from data.
func (g *Generator) Generate(ctx context.Context) (*model.Magazine, error) {
	data, err := g.fetchMarket(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := g.llm.Generate(ctx, llm.Request{
		Prompt:      buildPrompt(data),
		Model:       g.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate magazine: %w", err)
	}

	var reply struct {
		Hero     model.MagazineHero               `json:"hero"`
		Sections map[string]model.MagazineSection `json:"sections"`
	}
	if err := llm.DecodeJSON(resp.Text, &reply); err != nil {
		return nil, fmt.Errorf("decode magazine: %w", err)
	}

	now := g.now()
	return &model.Magazine{
		Hero:        reply.Hero,
		Sections:    reply.Sections,
		KeyDates:    KeyDates(now),
		Segments:    data.Segments,
		GeneratedAt: model.FormatTimestamp(now),
		MarketData: model.MagazineMarketData{
			BTCPrice:       data.Bitcoin.Price,
			ETHPrice:       data.Ethereum.Price,
			TotalMarketCap: data.Global.TotalMarketCap,
			BTCDominance:   data.Global.BTCDominance,
		},
	}, nil
}

// Publish generates the issue and replaces the stored magazine.
func (g *Generator) Publish(ctx context.Context) (*model.Magazine, string, error) {
	slog.Info("generating weekend magazine", "model", g.model, "provider", g.llm.Name())

	magazine, err := g.Generate(ctx)
	if err != nil {
		return nil, "", err
	}

	path, err := g.store.SaveMagazine(magazine)
	if err != nil {
		return nil, "", fmt.Errorf("save magazine: %w", err)
	}
	slog.Info("magazine saved", "path", path, "headline", magazine.Hero.Headline, "segments", len(magazine.Segments))

	if g.archive != nil {
		if _, err := g.archive.SaveContent(ctx, model.ContentMagazine, "", "", magazine); err != nil {
			slog.Error("error archiving magazine", "error", err)
		}
	}

	return magazine, path, nil
}

func (g *Generator) fetchMarket(ctx context.Context) (weeklyMarket, error) {
	global, err := g.source.Global(ctx)
	if err != nil {
		return weeklyMarket{}, fmt.Errorf("fetch global market: %w", err)
	}

	coins, err := g.source.TopCoins(ctx, universe, "24h", "7d", "30d")
	if err != nil {
		return weeklyMarket{}, fmt.Errorf("fetch top coins: %w", err)
	}

	data := weeklyMarket{
		Global:   *global,
		Segments: SegmentPerformance(coins),
	}
	for _, c := range coins {
		switch c.ID {
		case "bitcoin":
			data.Bitcoin = c
		case "ethereum":
			data.Ethereum = c
		}
	}
	return data, nil
}
