package brief

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"litmus/internal/model"
	"litmus/pkg/news"
)

type regionContext struct {
	Timezone     string
	Overnight    string
	LocalFactors string
}

var regionContexts = map[string]regionContext{
	model.RegionAPAC: {
		Timezone:     "Asia-Pacific",
		Overnight:    "US session",
		LocalFactors: "Hong Kong regulation, Japanese institutional news, Australian macro, Korean retail sentiment",
	},
	model.RegionEMEA: {
		Timezone:     "Europe and Middle East",
		Overnight:    "US close and the Asia session",
		LocalFactors: "ECB policy, MiCA implementation, UK regulation, European institutional flows",
	},
	model.RegionAmericas: {
		Timezone:     "North and South America",
		Overnight:    "Asia and Europe sessions",
		LocalFactors: "Fed policy, SEC regulation, ETF flows, US institutional positioning",
	},
}

// MorningSections and EveningSections are the section keys each cadence must return.
var (
	MorningSections = []string{
		"the_lead",
		"the_mechanism",
		"the_complication",
		"the_behavioral_layer",
		"the_forward_view",
		"the_closing_line",
	}
	EveningSections = []string{"the_day", "the_move_explained", "into_tonight"}
)

const morningPrompt = `You are the chief markets analyst for The Litmus, writing the morning brief that crypto investors read before their first meeting. Give readers a framework for understanding the market, not data with adjectives.

REGIONAL CONTEXT (%s):
Your reader slept through the %s. Local factors: %s.

CURRENT MARKET DATA:
%s
%s
Write a 500-650 word brief that makes an argument about what the market is telling us. The reader should finish with a changed mental model, not just updated numbers.

Output JSON only, no other text:
{
  "headline": "5-7 word headline that states your thesis",
  "sections": {
    "the_lead": "40-60 words. Your thesis, the frame that makes sense of the noise",
    "the_mechanism": "120-150 words. Why this is happening at the structural level: flows, positioning, plumbing",
    "the_complication": "100-130 words. What does not fit the thesis and where the market disagrees with itself",
    "the_behavioral_layer": "80-100 words. The psychological or structural dynamic behind the behaviour",
    "the_forward_view": "80-100 words. What would confirm or refute the thesis, as if-then frameworks",
    "the_closing_line": "15-25 words. One quotable sentence that crystallizes the insight"
  }
}

Rules:
- Never use: bullish, bearish, moon, pump, FOMO, FUD, skyrockets, plummets, massive, altcoins
- Use specific numbers with context and conditional framing
- Do not anthropomorphize markets`

const eveningPrompt = `You are the evening editor for The Litmus. The morning brief said what to watch; the evening update says what happened. Close the loop for investors ending their day.

CURRENT MARKET DATA:
%s
%s
Output JSON only, no other text:
{
  "headline": "4-6 word headline summarizing the day",
  "sections": {
    "the_day": "3-4 sentences on what actually happened: price action, catalysts, surprises",
    "the_move_explained": "2-3 sentences on why it happened, with causation where identifiable",
    "into_tonight": "2 sentences on what carries into the overnight session"
  }
}

Rules:
- Maximum 150 words total
- If the day was uneventful, say so`

type marketData struct {
	BTCPrice           float64
	BTC24hChange       float64
	ETHPrice           float64
	ETH24hChange       float64
	TotalMarketCap     float64
	MarketCapChange24h float64
}

func buildPrompt(region, briefType string, data marketData, headlines []news.Article) string {
	if briefType == model.BriefEvening {
		return fmt.Sprintf(eveningPrompt, formatMarket(data, false), formatHeadlines(headlines))
	}

	ctx := regionContexts[region]
	return fmt.Sprintf(morningPrompt,
		ctx.Timezone, ctx.Overnight, ctx.LocalFactors,
		formatMarket(data, true), formatHeadlines(headlines))
}

func formatMarket(data marketData, withCapChange bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Bitcoin: $%s (%+.1f%% 24h)\n", dollars(data.BTCPrice), data.BTC24hChange)
	fmt.Fprintf(&b, "- Ethereum: $%s (%+.1f%% 24h)\n", dollars(data.ETHPrice), data.ETH24hChange)
	fmt.Fprintf(&b, "- Total Market Cap: $%.2fT", data.TotalMarketCap/1e12)
	if withCapChange {
		fmt.Fprintf(&b, " (%+.1f%% 24h)", data.MarketCapChange24h)
	}
	b.WriteString("\n")
	return b.String()
}

func formatHeadlines(headlines []news.Article) string {
	if len(headlines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nRECENT HEADLINES (context only, do not quote):\n")
	for _, a := range headlines {
		if a.Publisher != "" {
			fmt.Fprintf(&b, "- %s (%s)\n", a.Headline, a.Publisher)
		} else {
			fmt.Fprintf(&b, "- %s\n", a.Headline)
		}
	}
	return b.String()
}

// dollars renders a whole-dollar amount with thousands separators.
func dollars(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}
