package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/marek-a-m/vigor/internal/health"
)

var _ ReadingStore = (*SQLiteStore)(nil)

// SQLiteStore backs the reading history with the local sqlite database.
// The schema is managed by internal/migrations.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) SaveReading(ctx context.Context, r health.DailyReading) error {
	const query = `
		INSERT INTO readings (day, hrv, resting_hr, skin_temp)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			hrv = excluded.hrv,
			resting_hr = excluded.resting_hr,
			skin_temp = excluded.skin_temp
	`
	_, err := s.db.ExecContext(ctx, query,
		r.Day.Truncate(24*time.Hour).Format(time.DateOnly),
		nullable(r.HRV),
		nullable(r.RestingHR),
		nullable(r.SkinTemp),
	)
	return err
}

func (s *SQLiteStore) ReadingsSince(ctx context.Context, since time.Time) ([]health.DailyReading, error) {
	const query = `
		SELECT day, hrv, resting_hr, skin_temp
		FROM readings
		WHERE day >= ?
		ORDER BY day ASC
	`
	rows, err := s.db.QueryContext(ctx, query, since.Truncate(24*time.Hour).Format(time.DateOnly))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []health.DailyReading
	for rows.Next() {
		var (
			day             string
			hrv, rhr, tempC sql.NullFloat64
		)
		if err := rows.Scan(&day, &hrv, &rhr, &tempC); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.DateOnly, day)
		if err != nil {
			return nil, err
		}
		out = append(out, health.DailyReading{
			Day:       parsed,
			HRV:       reading(hrv),
			RestingHR: reading(rhr),
			SkinTemp:  reading(tempC),
		})
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Prune(ctx context.Context, before time.Time) error {
	const query = `DELETE FROM readings WHERE day < ?`
	_, err := s.db.ExecContext(ctx, query, before.Truncate(24*time.Hour).Format(time.DateOnly))
	return err
}

func nullable(r health.Reading) sql.NullFloat64 {
	if v, ok := r.Value(); ok {
		return sql.NullFloat64{Float64: v, Valid: true}
	}
	return sql.NullFloat64{}
}

func reading(v sql.NullFloat64) health.Reading {
	if !v.Valid {
		return health.None()
	}
	return health.Some(v.Float64)
}
