package mood

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"litmus/internal/model"
)

func f(v float64) *float64 { return &v }

func TestBreadth(t *testing.T) {
	tests := []struct {
		name      string
		changes   []*float64
		want      float64
		wantGreen int
	}{
		{name: "empty set is neutral", changes: nil, want: 50.0, wantGreen: 0},
		{name: "all green", changes: []*float64{f(1), f(0.01)}, want: 100.0, wantGreen: 2},
		{name: "all red", changes: []*float64{f(-1), f(-2)}, want: 0.0, wantGreen: 0},
		{name: "zero is not green", changes: []*float64{f(0), f(3)}, want: 50.0, wantGreen: 1},
		{name: "missing change counts as flat", changes: []*float64{nil, f(2), nil}, want: 33.3, wantGreen: 1},
		{name: "rounds to one decimal", changes: []*float64{f(1), f(1), f(-1)}, want: 66.7, wantGreen: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, green := Breadth(tt.changes)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantGreen, green)
		})
	}
}

func TestBreadthStaysInRange(t *testing.T) {
	for n := 1; n <= 100; n++ {
		for green := 0; green <= n; green += 7 {
			changes := make([]*float64, n)
			for i := range changes {
				if i < green {
					changes[i] = f(1)
				} else {
					changes[i] = f(-1)
				}
			}
			got, g := Breadth(changes)
			assert.Equal(t, green, g)
			if got < 0 || got > 100 {
				t.Fatalf("breadth %v out of range for %d/%d", got, green, n)
			}
		}
	}
}

func TestMarketCapToVolume(t *testing.T) {
	tests := []struct {
		name   string
		cap    float64
		volume float64
		want   float64
	}{
		{name: "zero volume uses default", cap: 3e12, volume: 0, want: 20.0},
		{name: "negative volume uses default", cap: 3e12, volume: -5, want: 20.0},
		{name: "plain ratio", cap: 3e12, volume: 1e11, want: 30.0},
		{name: "rounds to one decimal", cap: 2.5e12, volume: 1.37e11, want: 18.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarketCapToVolume(tt.cap, tt.volume))
		})
	}
}

func TestCalculate(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	coins := []model.CoinMarket{
		{ID: "bitcoin", Change24h: f(2.1)},
		{ID: "ethereum", Change24h: f(-0.4)},
		{ID: "solana", Change24h: nil},
		{ID: "ripple", Change24h: f(5)},
	}
	global := model.GlobalMarket{TotalMarketCap: 1.83e12, TotalVolume: 1e11}

	snap := Calculate(coins, global, now)

	assert.Equal(t, now, snap.Timestamp)
	assert.Equal(t, 50.0, snap.Breadth)
	assert.Equal(t, 18.3, snap.Ratio)
	assert.Equal(t, 2, snap.GreenCount)
	assert.Equal(t, 4, snap.TotalCount)
	assert.Equal(t, 1.83e12, snap.MarketCap)
	assert.Equal(t, 1e11, snap.Volume)
}
