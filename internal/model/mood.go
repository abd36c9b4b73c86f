package model

import "time"

// MoodSnapshot is one capture of the market mood indicators.
type MoodSnapshot struct {
	Timestamp  time.Time
	Breadth    float64
	Ratio      float64
	MarketCap  float64
	Volume     float64
	GreenCount int
	TotalCount int
}

type HourlyPoint struct {
	Timestamp string  `json:"timestamp"`
	Breadth   float64 `json:"breadth"`
	Ratio     float64 `json:"mv"`
}

type DailyPoint struct {
	Timestamp string  `json:"timestamp"`
	Breadth   float64 `json:"breadth"`
	Ratio     float64 `json:"mv"`
	MarketCap float64 `json:"market_cap"`
	Volume    float64 `json:"volume"`
}

// HistoryDocument is the persisted mood history read by the front-end trails.
// Timestamps stay strings so a single unparsable value cannot discard the whole file.
type HistoryDocument struct {
	Hourly           []HourlyPoint `json:"hourly"`
	Daily            []DailyPoint  `json:"daily"`
	LastDailyCapture *string       `json:"last_daily_capture"`
}

func NewHistoryDocument() *HistoryDocument {
	return &HistoryDocument{
		Hourly: []HourlyPoint{},
		Daily:  []DailyPoint{},
	}
}

// FormatTimestamp renders t the way history and content files store instants.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
