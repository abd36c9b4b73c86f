package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"litmus/internal/model"
)

// ArchiveRepository keeps every mood capture and generated document in Postgres, beyond the
// short retention windows of the JSON files the front-end reads.
type ArchiveRepository struct {
	db *sql.DB
}

func NewArchiveRepository(db *sql.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

func (r *ArchiveRepository) SaveMoodSnapshot(ctx context.Context, snap model.MoodSnapshot) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO mood_snapshot(captured_at, breadth, mv_ratio, market_cap, volume, green_count, total_count)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (captured_at) DO NOTHING
	`, snap.Timestamp, snap.Breadth, snap.Ratio, snap.MarketCap, snap.Volume, snap.GreenCount, snap.TotalCount)
	return err
}

// SaveContent stores a generated document. Region and type are empty for the magazine.
func (r *ArchiveRepository) SaveContent(ctx context.Context, kind, region, contentType string, doc any) (int64, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO generated_content(kind, region, content_type, payload)
		VALUES($1, NULLIF($2, ''), NULLIF($3, ''), $4)
		RETURNING id
	`, kind, region, contentType, payload).Scan(&id)
	return id, err
}

func (r *ArchiveRepository) RecentMoodSnapshots(ctx context.Context, limit int) ([]model.MoodSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT captured_at, breadth, mv_ratio, market_cap, volume, green_count, total_count
		FROM mood_snapshot
		ORDER BY captured_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []model.MoodSnapshot
	for rows.Next() {
		var s model.MoodSnapshot
		err := rows.Scan(&s.Timestamp, &s.Breadth, &s.Ratio, &s.MarketCap, &s.Volume, &s.GreenCount, &s.TotalCount)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snaps, nil
}

func (r *ArchiveRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
