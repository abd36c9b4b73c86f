package model

// CoinMarket is one row of the ranked market listing. Percent changes are nil when the
// upstream API has no figure for that window.
type CoinMarket struct {
	ID        string
	Symbol    string
	Name      string
	Price     float64
	MarketCap float64
	Volume24h float64
	Change24h *float64
	Change7d  *float64
	Change30d *float64
}

type GlobalMarket struct {
	TotalMarketCap     float64
	TotalVolume        float64
	BTCDominance       float64
	ETHDominance       float64
	MarketCapChange24h float64
}

type PriceQuote struct {
	USD       float64
	Change24h float64
	MarketCap float64
}
