// Package mood derives the market mood indicators shown on the front page gauges.
package mood

import (
	"time"

	"github.com/shopspring/decimal"

	"litmus/internal/model"
)

const (
	// NeutralBreadth is reported when there are no assets to count, so the gauge sits at
	// the midpoint instead of reading as an all-red market.
	NeutralBreadth = 50.0

	// DefaultMarketCapToVolume is reported when total volume is zero or missing. It is
	// roughly the long-run norm for the whole market.
	DefaultMarketCapToVolume = 20.0
)

// Breadth returns the percentage of assets with a positive 24h change, rounded to one
// decimal, and the number of green assets. A nil change counts as flat.
func Breadth(changes []*float64) (float64, int) {
	if len(changes) == 0 {
		return NeutralBreadth, 0
	}

	green := 0
	for _, c := range changes {
		if c != nil && *c > 0 {
			green++
		}
	}

	pct := decimal.NewFromInt(int64(green) * 100).Div(decimal.NewFromInt(int64(len(changes))))
	return pct.Round(1).InexactFloat64(), green
}

// MarketCapToVolume returns total market cap over total 24h volume, rounded to one decimal.
func MarketCapToVolume(marketCap, volume float64) float64 {
	if volume <= 0 {
		return DefaultMarketCapToVolume
	}
	ratio := decimal.NewFromFloat(marketCap).Div(decimal.NewFromFloat(volume))
	return ratio.Round(1).InexactFloat64()
}

// Calculate builds the mood snapshot for one capture run.
func Calculate(coins []model.CoinMarket, global model.GlobalMarket, now time.Time) model.MoodSnapshot {
	changes := make([]*float64, len(coins))
	for i, c := range coins {
		changes[i] = c.Change24h
	}

	breadth, green := Breadth(changes)

	return model.MoodSnapshot{
		Timestamp:  now.UTC(),
		Breadth:    breadth,
		Ratio:      MarketCapToVolume(global.TotalMarketCap, global.TotalVolume),
		MarketCap:  global.TotalMarketCap,
		Volume:     global.TotalVolume,
		GreenCount: green,
		TotalCount: len(coins),
	}
}
