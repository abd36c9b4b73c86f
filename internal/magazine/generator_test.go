package magazine

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"litmus/internal/model"
	"litmus/internal/repository"
	"litmus/pkg/llm"
)

type fakeSource struct {
	global   *model.GlobalMarket
	coins    []model.CoinMarket
	coinsErr error
	perPage  int
	windows  []string
}

func (f *fakeSource) Global(ctx context.Context) (*model.GlobalMarket, error) {
	return f.global, nil
}

func (f *fakeSource) TopCoins(ctx context.Context, perPage int, windows ...string) ([]model.CoinMarket, error) {
	f.perPage = perPage
	f.windows = windows
	return f.coins, f.coinsErr
}

type fakeLLM struct {
	reply string
	got   llm.Request
}

func (f *fakeLLM) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	f.got = req
	return &llm.Response{Text: f.reply, Model: req.Model}, nil
}

func (f *fakeLLM) Name() string { return "fake" }

const magazineReply = `Here is the issue:
{
  "hero": {"headline": "The Week Liquidity Came Back", "subtitle": "Flows returned first.", "image_keywords": "harbour, ships"},
  "sections": {
    "week_review": {"headline": "Liquidity Returns", "content": "Para one.\n\nPara two.", "image": "harbour", "image_caption": "Ships"},
    "outlook": {"headline": "What To Watch", "content": "CPI."}
  }
}`

func newSource() *fakeSource {
	return &fakeSource{
		global: &model.GlobalMarket{TotalMarketCap: 2.41e12, BTCDominance: 52.3, ETHDominance: 16.8, MarketCapChange24h: -1.2},
		coins: []model.CoinMarket{
			{ID: "bitcoin", Symbol: "btc", Price: 64210.55, Change7d: pct(5.5), Change30d: pct(12.25)},
			{ID: "ethereum", Symbol: "eth", Price: 3120.4, Change7d: pct(-2.0)},
			{ID: "solana", Symbol: "sol", Price: 140, Change7d: pct(8.0)},
		},
	}
}

func TestGenerateMagazine(t *testing.T) {
	source := newSource()
	gen := &fakeLLM{reply: magazineReply}
	g := NewGenerator(source, gen, nil, "magazine-model")
	g.now = func() time.Time { return time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC) }

	mag, err := g.Generate(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 50, source.perPage)
	assert.Equal(t, []string{"24h", "7d", "30d"}, source.windows)

	assert.Equal(t, "magazine-model", gen.got.Model)
	assert.Equal(t, 8000, gen.got.MaxTokens)
	assert.Equal(t, 0.6, gen.got.Temperature)
	assert.Equal(t, true, strings.Contains(gen.got.Prompt, "- Total Market Cap: $2.41T"))
	assert.Equal(t, true, strings.Contains(gen.got.Prompt, "- Price: $64,211"))
	assert.Equal(t, true, strings.Contains(gen.got.Prompt, "- 30-day change: 12.2%"))
	assert.Equal(t, true, strings.Contains(gen.got.Prompt, "- Infrastructure: 3.0%"))
	assert.Equal(t, true, strings.Contains(gen.got.Prompt, `"corporate": {`))

	assert.Equal(t, "The Week Liquidity Came Back", mag.Hero.Headline)
	assert.Equal(t, "Para one.\n\nPara two.", mag.Sections["week_review"].Content)
	assert.Equal(t, "", mag.Sections["outlook"].Image)
	assert.Equal(t, "Mon 4", mag.KeyDates[0].Day)
	assert.Equal(t, model.SegmentPerformance{Change: 3.0, Coins: []string{"ETH", "SOL"}}, mag.Segments["infrastructure"])
	assert.Equal(t, model.SegmentPerformance{Change: 5.5, Coins: []string{"BTC"}}, mag.Segments["payment"])
	assert.Equal(t, "2024-03-01T23:00:00Z", mag.GeneratedAt)
	assert.Equal(t, model.MagazineMarketData{
		BTCPrice:       64210.55,
		ETHPrice:       3120.4,
		TotalMarketCap: 2.41e12,
		BTCDominance:   52.3,
	}, mag.MarketData)
}

func TestGenerateMagazineFetchFailure(t *testing.T) {
	source := newSource()
	source.coinsErr = errors.New("http 429")
	gen := &fakeLLM{reply: magazineReply}

	_, err := NewGenerator(source, gen, nil, "m").Generate(context.Background())

	assert.Equal(t, true, errors.Is(err, source.coinsErr))
	assert.Equal(t, "", gen.got.Prompt)
}

func TestPublishMagazine(t *testing.T) {
	repo := repository.NewContentRepository(t.TempDir(), "")
	g := NewGenerator(newSource(), &fakeLLM{reply: magazineReply}, repo, "m")

	_, path, err := g.Publish(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, repo.MagazinePath(), path)

	data, err := repo.ReadMagazine()
	assert.Equal(t, nil, err)

	var doc map[string]any
	assert.Equal(t, nil, json.Unmarshal(data, &doc))
	for _, key := range []string{"hero", "sections", "key_dates", "segments", "generated_at", "market_data"} {
		_, ok := doc[key]
		assert.Equal(t, true, ok)
	}
}
