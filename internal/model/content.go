package model

const (
	RegionAPAC     = "apac"
	RegionEMEA     = "emea"
	RegionAmericas = "americas"

	BriefMorning = "morning"
	BriefEvening = "evening"

	ContentBrief    = "brief"
	ContentMagazine = "magazine"
)

var Regions = []string{RegionAPAC, RegionEMEA, RegionAmericas}

var BriefTypes = []string{BriefMorning, BriefEvening}

// Brief is the document rendered by the front-end for one region and cadence.
type Brief struct {
	Headline       string            `json:"headline"`
	Sections       map[string]string `json:"sections"`
	Region         string            `json:"region"`
	Type           string            `json:"type"`
	GeneratedAt    string            `json:"generated_at"`
	BTCPrice       float64           `json:"btc_price"`
	ETHPrice       float64           `json:"eth_price"`
	TotalMarketCap float64           `json:"total_market_cap"`
	BTC24hChange   float64           `json:"btc_24h_change"`
}

type MagazineHero struct {
	Headline      string `json:"headline"`
	Subtitle      string `json:"subtitle"`
	ImageKeywords string `json:"image_keywords"`
}

type MagazineSection struct {
	Headline     string `json:"headline"`
	Content      string `json:"content"`
	Image        string `json:"image,omitempty"`
	ImageCaption string `json:"image_caption,omitempty"`
}

type KeyDate struct {
	Day   string `json:"day"`
	Event string `json:"event"`
}

type SegmentPerformance struct {
	Change float64  `json:"change"`
	Coins  []string `json:"coins"`
}

type MagazineMarketData struct {
	BTCPrice       float64 `json:"btc_price"`
	ETHPrice       float64 `json:"eth_price"`
	TotalMarketCap float64 `json:"total_market_cap"`
	BTCDominance   float64 `json:"btc_dominance"`
}

type Magazine struct {
	Hero        MagazineHero                  `json:"hero"`
	Sections    map[string]MagazineSection    `json:"sections"`
	KeyDates    []KeyDate                     `json:"key_dates"`
	Segments    map[string]SegmentPerformance `json:"segments"`
	GeneratedAt string                        `json:"generated_at"`
	MarketData  MagazineMarketData            `json:"market_data"`
}
