package magazine

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestNextMonday(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"friday night", time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC), time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		{"saturday", time.Date(2024, 3, 2, 7, 0, 0, 0, time.UTC), time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
		{"monday skips to the following week", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
		{"offset clock uses UTC day", time.Date(2024, 3, 2, 6, 0, 0, 0, time.FixedZone("SGT", 8*3600)), time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextMonday(tt.now))
		})
	}
}

func TestKeyDatesLabels(t *testing.T) {
	dates := KeyDates(time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, 5, len(dates))
	assert.Equal(t, "Mon 4", dates[0].Day)
	assert.Equal(t, "Fed Chair Powell Speech", dates[0].Event)
	assert.Equal(t, "Fri 8", dates[4].Day)
}

func TestKeyDatesRollOverMonthEnd(t *testing.T) {
	dates := KeyDates(time.Date(2024, 1, 26, 23, 0, 0, 0, time.UTC))

	var days []string
	for _, d := range dates {
		days = append(days, d.Day)
	}
	assert.Equal(t, []string{"Mon 29", "Tue 30", "Wed 31", "Thu 1", "Fri 2"}, days)
}
