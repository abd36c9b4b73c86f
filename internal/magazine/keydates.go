package magazine

import (
	"fmt"
	"time"

	"litmus/internal/model"
)

// weekAheadEvents are the standing macro fixtures shown for Monday through Friday.
var weekAheadEvents = []string{
	"Fed Chair Powell Speech",
	"US Producer Price Index",
	"FOMC Minutes Release",
	"ECB Rate Decision",
	"US Retail Sales Data",
}

// NextMonday returns the UTC date of the first Monday strictly after now.
func NextMonday(now time.Time) time.Time {
	now = now.UTC()
	days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return time.Date(now.Year(), now.Month(), now.Day()+days, 0, 0, 0, 0, time.UTC)
}

// KeyDates labels the weekdays of the coming week like "Mon 9", rolling over month ends.
func KeyDates(now time.Time) []model.KeyDate {
	monday := NextMonday(now)
	dates := make([]model.KeyDate, len(weekAheadEvents))
	for i, event := range weekAheadEvents {
		day := monday.AddDate(0, 0, i)
		dates[i] = model.KeyDate{
			Day:   fmt.Sprintf("%s %d", day.Format("Mon"), day.Day()),
			Event: event,
		}
	}
	return dates
}
