package magazine

import (
	"strings"

	"github.com/shopspring/decimal"

	"litmus/internal/model"
)

type Segment struct {
	Name    string
	CoinIDs []string
}

// Segments groups CoinGecko ids by use case. A coin may sit in more than one segment.
var Segments = []Segment{
	{Name: "payment", CoinIDs: []string{"bitcoin", "litecoin", "monero"}},
	{Name: "stablecoin", CoinIDs: []string{"tether", "usd-coin"}},
	{Name: "infrastructure", CoinIDs: []string{"ethereum", "solana", "avalanche-2"}},
	{Name: "defi", CoinIDs: []string{"aave", "uniswap", "compound-governance-token"}},
	{Name: "utility", CoinIDs: []string{"chainlink", "filecoin", "render-token"}},
	{Name: "entertainment", CoinIDs: []string{"apecoin", "decentraland", "the-sandbox"}},
	{Name: "ai", CoinIDs: []string{"render-token", "akash-network", "bittensor"}},
}

// SegmentPerformance averages the 7d change of each segment's members found in coins.
// Missing and zero changes are left out of the average, and a segment with nothing to
// average is omitted. Coins lists the symbols of every member present.
func SegmentPerformance(coins []model.CoinMarket) map[string]model.SegmentPerformance {
	byID := make(map[string]model.CoinMarket, len(coins))
	for _, c := range coins {
		byID[c.ID] = c
	}

	out := map[string]model.SegmentPerformance{}
	for _, seg := range Segments {
		sum := decimal.Zero
		n := 0
		symbols := []string{}

		for _, id := range seg.CoinIDs {
			c, ok := byID[id]
			if !ok {
				continue
			}
			symbols = append(symbols, strings.ToUpper(c.Symbol))
			if c.Change7d != nil && *c.Change7d != 0 {
				sum = sum.Add(decimal.NewFromFloat(*c.Change7d))
				n++
			}
		}

		if n == 0 {
			continue
		}
		out[seg.Name] = model.SegmentPerformance{
			Change: sum.Div(decimal.NewFromInt(int64(n))).InexactFloat64(),
			Coins:  symbols,
		}
	}
	return out
}
