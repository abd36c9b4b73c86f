package handler

import "encoding/json"

type RegionBriefsResponse struct {
	Region  string          `json:"region"`
	Morning json.RawMessage `json:"morning"`
	Evening json.RawMessage `json:"evening"`
}

type MoodSnapshotResponse struct {
	Timestamp  string  `json:"timestamp"`
	Breadth    float64 `json:"breadth"`
	Ratio      float64 `json:"mv"`
	MarketCap  float64 `json:"market_cap"`
	Volume     float64 `json:"volume"`
	GreenCount int     `json:"green_count"`
	TotalCount int     `json:"total_count"`
}

type MoodArchiveResponse struct {
	Snapshots []MoodSnapshotResponse `json:"snapshots"`
	Limit     int                    `json:"limit"`
}
