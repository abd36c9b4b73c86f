package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"litmus/internal/model"
)

type MoodArchive interface {
	RecentMoodSnapshots(ctx context.Context, limit int) ([]model.MoodSnapshot, error)
	Ping(ctx context.Context) error
}

// MoodHandler serves the long-term mood archive. The archive is optional; without it the
// archive endpoint answers 503 and health reports the database as disabled.
type MoodHandler struct {
	archive MoodArchive
}

func NewMoodHandler(archive MoodArchive) *MoodHandler {
	return &MoodHandler{archive: archive}
}

func toMoodSnapshotResponse(s model.MoodSnapshot) MoodSnapshotResponse {
	return MoodSnapshotResponse{
		Timestamp:  model.FormatTimestamp(s.Timestamp),
		Breadth:    s.Breadth,
		Ratio:      s.Ratio,
		MarketCap:  s.MarketCap,
		Volume:     s.Volume,
		GreenCount: s.GreenCount,
		TotalCount: s.TotalCount,
	}
}

func (h *MoodHandler) GetArchive(c *gin.Context) {
	if h.archive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Mood archive not configured"})
		return
	}

	limit := getQueryLimit(c)

	snaps, err := h.archive.RecentMoodSnapshots(c.Request.Context(), limit)
	if err != nil {
		slog.Error("error fetching mood snapshots", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := MoodArchiveResponse{
		Snapshots: make([]MoodSnapshotResponse, len(snaps)),
		Limit:     limit,
	}
	for i, s := range snaps {
		res.Snapshots[i] = toMoodSnapshotResponse(s)
	}

	c.JSON(http.StatusOK, res)
}

func (h *MoodHandler) GetHealth(c *gin.Context) {
	if h.archive == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "disabled",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.archive.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	paramLimit := c.Query(name)

	if paramLimit == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(paramLimit)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", paramLimit, "error", err)
		return defaultValue
	}

	return parsedValue
}

// getQueryLimit defaults to one day of hourly captures and allows up to a week.
func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 24
		maxLimit     = 168
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}
