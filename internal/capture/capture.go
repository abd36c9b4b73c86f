// Package capture records one market mood reading into the history trails.
package capture

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"litmus/internal/history"
	"litmus/internal/model"
	"litmus/internal/mood"
)

// TrackedCoins is the size of the ranked universe used for market breadth.
const TrackedCoins = 100

type MarketSource interface {
	Global(ctx context.Context) (*model.GlobalMarket, error)
	TopCoins(ctx context.Context, perPage int, windows ...string) ([]model.CoinMarket, error)
}

type Archiver interface {
	SaveMoodSnapshot(ctx context.Context, snap model.MoodSnapshot) error
}

type Job struct {
	source  MarketSource
	store   *history.Store
	archive Archiver
	now     func() time.Time
}

type Result struct {
	Snapshot      model.MoodSnapshot
	HourlyCount   int
	DailyCount    int
	DailyCaptured bool
}

func NewJob(source MarketSource, store *history.Store) *Job {
	return &Job{
		source: source,
		store:  store,
		now:    time.Now,
	}
}

// WithArchive also sends every snapshot to long-term storage.
func (j *Job) WithArchive(archive Archiver) *Job {
	j.archive = archive
	return j
}

// Run fetches the market, appends an hourly point, appends a daily point on the first run of
// a UTC day and saves the history. Nothing is written when the fetch fails.
func (j *Job) Run(ctx context.Context) (*Result, error) {
	global, err := j.source.Global(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch global market: %w", err)
	}

	coins, err := j.source.TopCoins(ctx, TrackedCoins, "24h")
	if err != nil {
		return nil, fmt.Errorf("fetch top coins: %w", err)
	}

	snap := mood.Calculate(coins, *global, j.now())
	slog.Info("mood calculated",
		"breadth", snap.Breadth,
		"green", snap.GreenCount,
		"total", snap.TotalCount,
		"mv_ratio", snap.Ratio,
	)

	doc := j.store.Load()
	ts := model.FormatTimestamp(snap.Timestamp)

	history.AppendHourly(doc, model.HourlyPoint{
		Timestamp: ts,
		Breadth:   snap.Breadth,
		Ratio:     snap.Ratio,
	})

	res := &Result{Snapshot: snap}

	if history.ShouldCaptureDaily(doc, snap.Timestamp) {
		history.AppendDaily(doc, model.DailyPoint{
			Timestamp: ts,
			Breadth:   snap.Breadth,
			Ratio:     snap.Ratio,
			MarketCap: snap.MarketCap,
			Volume:    snap.Volume,
		})
		res.DailyCaptured = true
	}

	if err := j.store.Save(doc); err != nil {
		return nil, fmt.Errorf("save mood history: %w", err)
	}

	res.HourlyCount = len(doc.Hourly)
	res.DailyCount = len(doc.Daily)

	slog.Info("mood history saved",
		"path", j.store.Path(),
		"hourly_points", res.HourlyCount,
		"daily_points", res.DailyCount,
		"daily_captured", res.DailyCaptured,
	)

	if j.archive != nil {
		if err := j.archive.SaveMoodSnapshot(ctx, snap); err != nil {
			slog.Error("error archiving mood snapshot", "error", err)
		}
	}

	return res, nil
}
