package magazine

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"litmus/internal/model"
)

// SectionKeys are the magazine sections the model is asked to write, in reading order.
var SectionKeys = []string{"week_review", "apac", "emea", "americas", "flows", "corporate", "outlook"}

const magazinePrompt = `You are the editorial team at The Litmus, a crypto intelligence publication. Today is Saturday and you are writing the Weekend Magazine: the weekly analysis readers save for the weekend, with depth that daily coverage cannot give.

%s
Write these sections. Each should be substantive and written for readers who want understanding, not hype.

1. THE WEEK IN REVIEW (300-400 words): your thesis about what this week revealed about the market's character
2. ASIA-PACIFIC (250-300 words): Hong Kong, Singapore, Japan, Korea, Australia
3. EUROPE & MIDDLE EAST (250-300 words): MiCA, UK regulation, UAE, European institutions
4. AMERICAS (250-300 words): US ETFs, SEC developments, Latin American adoption
5. CAPITAL FLOWS (250-300 words): ETF flows, whale movements, exchange balances, stablecoin supply
6. CORPORATE MOVES (200-250 words): treasury companies, miners, exchanges
7. THE WEEK AHEAD (200-250 words): key dates, catalysts and levels that matter, as a framework rather than predictions

Rules:
- Never use: bullish, bearish, moon, pump, dump, FOMO, FUD
- No exclamation marks and no specific price predictions
- Do not anthropomorphize markets

Output JSON only, no other text:
{
  "hero": {
    "headline": "8-12 word main headline",
    "subtitle": "One sentence expanding on the headline",
    "image_keywords": "3-5 keywords for a stock image search"
  },
  "sections": {
%s
  }
}`

type weeklyMarket struct {
	Global   model.GlobalMarket
	Bitcoin  model.CoinMarket
	Ethereum model.CoinMarket
	Segments map[string]model.SegmentPerformance
}

func buildPrompt(data weeklyMarket) string {
	return fmt.Sprintf(magazinePrompt, formatMarket(data), sectionSchema())
}

func formatMarket(data weeklyMarket) string {
	var b strings.Builder
	b.WriteString("CURRENT MARKET STATE:\n")
	fmt.Fprintf(&b, "- Total Market Cap: $%.2fT\n", data.Global.TotalMarketCap/1e12)
	fmt.Fprintf(&b, "- 24h Change: %.1f%%\n", data.Global.MarketCapChange24h)
	fmt.Fprintf(&b, "- BTC Dominance: %.1f%%\n", data.Global.BTCDominance)
	fmt.Fprintf(&b, "- ETH Dominance: %.1f%%\n", data.Global.ETHDominance)

	for _, c := range []struct {
		label string
		coin  model.CoinMarket
	}{{"BITCOIN", data.Bitcoin}, {"ETHEREUM", data.Ethereum}} {
		fmt.Fprintf(&b, "\n%s:\n", c.label)
		fmt.Fprintf(&b, "- Price: $%s\n", humanize.Comma(int64(math.Round(c.coin.Price))))
		fmt.Fprintf(&b, "- 7-day change: %.1f%%\n", value(c.coin.Change7d))
		fmt.Fprintf(&b, "- 30-day change: %.1f%%\n", value(c.coin.Change30d))
	}

	b.WriteString("\nSEGMENT PERFORMANCE (7-day):\n")
	for _, seg := range Segments {
		perf, ok := data.Segments[seg.Name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s: %.1f%%\n", strings.ToUpper(seg.Name[:1])+seg.Name[1:], perf.Change)
	}
	return b.String()
}

func sectionSchema() string {
	lines := make([]string, len(SectionKeys))
	for i, key := range SectionKeys {
		if key == "outlook" {
			lines[i] = fmt.Sprintf(`    %q: {"headline": "4-8 word section headline", "content": "Full section content"}`, key)
			continue
		}
		lines[i] = fmt.Sprintf(`    %q: {"headline": "4-8 word section headline", "content": "Full section content with paragraph breaks as \n\n", "image": "image search keywords", "image_caption": "Brief caption"}`, key)
	}
	return strings.Join(lines, ",\n")
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
