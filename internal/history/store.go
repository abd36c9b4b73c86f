// Package history keeps the hourly and daily mood trails in a single JSON document.
//
// A capture run loads the document once, appends to it in memory and saves the whole
// document back. Only one capture run is expected to touch the file at a time.
package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"cloud.google.com/go/civil"

	"litmus/internal/model"
	"litmus/internal/repository"
)

const (
	// MaxHourlyPoints covers 24 hourly captures plus one slot of slack.
	MaxHourlyPoints = 25
	// MaxDailyPoints covers 7 daily captures plus one slot of slack.
	MaxDailyPoints = 8
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the history document. It never fails: a missing, unreadable or corrupt file
// yields an empty document so a damaged history cannot block new captures.
func (s *Store) Load() *model.HistoryDocument {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("mood history unreadable, starting fresh", "path", s.path, "error", err)
		}
		return model.NewHistoryDocument()
	}

	var doc model.HistoryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("mood history corrupt, starting fresh", "path", s.path, "error", err)
		return model.NewHistoryDocument()
	}

	if doc.Hourly == nil {
		doc.Hourly = []model.HourlyPoint{}
	}
	if doc.Daily == nil {
		doc.Daily = []model.DailyPoint{}
	}
	return &doc
}

// Save rewrites the whole document, creating the parent directory when needed.
func (s *Store) Save(doc *model.HistoryDocument) error {
	return repository.WriteJSONFile(s.path, doc)
}

// ShouldCaptureDaily reports whether now falls on a later UTC calendar date than the last
// daily capture. A missing or unparsable watermark counts as never captured.
func ShouldCaptureDaily(doc *model.HistoryDocument, now time.Time) bool {
	if doc.LastDailyCapture == nil || *doc.LastDailyCapture == "" {
		return true
	}

	last, err := time.Parse(time.RFC3339Nano, *doc.LastDailyCapture)
	if err != nil {
		return true
	}

	return civil.DateOf(now.UTC()).After(civil.DateOf(last.UTC()))
}

func AppendHourly(doc *model.HistoryDocument, point model.HourlyPoint) {
	doc.Hourly = keepLast(append(doc.Hourly, point), MaxHourlyPoints)
}

// AppendDaily records a daily point and moves the watermark to its timestamp.
func AppendDaily(doc *model.HistoryDocument, point model.DailyPoint) {
	doc.Daily = keepLast(append(doc.Daily, point), MaxDailyPoints)
	ts := point.Timestamp
	doc.LastDailyCapture = &ts
}

func keepLast[T any](points []T, max int) []T {
	if len(points) <= max {
		return points
	}
	trimmed := make([]T, max)
	copy(trimmed, points[len(points)-max:])
	return trimmed
}
