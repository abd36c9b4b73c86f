package scheduler

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/go-playground/assert/v2"

	"litmus/internal/config"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

func (r *recorder) jobs() Jobs {
	return Jobs{
		Capture: func(ctx context.Context) error {
			r.record("capture")
			return nil
		},
		Brief: func(ctx context.Context, region, briefType string) error {
			r.record(region + "/" + briefType)
			return nil
		},
		Weekend: func(ctx context.Context) error {
			r.record("weekend")
			return errors.New("model overloaded")
		},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		CaptureSchedule: "5 * * * *",
		BriefSchedules: []config.BriefSchedule{
			{Spec: "0 22 * * *", Region: "apac", BriefType: "morning"},
			{Spec: "0 23 * * *", Region: "americas", BriefType: "evening"},
		},
		WeekendSchedule: "0 23 * * 5",
	}
}

func TestNewRegistersEveryJob(t *testing.T) {
	rec := &recorder{}
	s, err := New(context.Background(), testConfig(), rec.jobs())
	assert.Equal(t, nil, err)

	entries := s.entries()
	assert.Equal(t, 4, len(entries))

	for _, e := range entries {
		e.WrappedJob.Run()
	}

	sort.Strings(rec.calls)
	assert.Equal(t, []string{"americas/evening", "apac/morning", "capture", "weekend"}, rec.calls)
}

func TestNewSkipsEmptySpec(t *testing.T) {
	cfg := testConfig()
	cfg.WeekendSchedule = ""
	cfg.BriefSchedules = nil

	s, err := New(context.Background(), cfg, (&recorder{}).jobs())

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(s.entries()))
}

func TestNewRejectsBadSpec(t *testing.T) {
	cfg := testConfig()
	cfg.CaptureSchedule = "every hour"

	_, err := New(context.Background(), cfg, (&recorder{}).jobs())

	assert.NotEqual(t, nil, err)
}

func TestStartStop(t *testing.T) {
	s, err := New(context.Background(), testConfig(), (&recorder{}).jobs())
	assert.Equal(t, nil, err)

	s.Start()
	s.Stop()
}
