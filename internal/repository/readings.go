// Package repository is the Postgres-backed reading store, used when a
// DATABASE_URL is configured instead of the local sqlite file.
package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marek-a-m/vigor/internal/health"
	"github.com/marek-a-m/vigor/internal/storage"
)

var _ storage.ReadingStore = (*ReadingRepo)(nil)

type ReadingRepo struct {
	pool *pgxpool.Pool
}

func NewReadingRepo(pool *pgxpool.Pool) *ReadingRepo {
	return &ReadingRepo{pool: pool}
}

func (r *ReadingRepo) SaveReading(ctx context.Context, reading health.DailyReading) error {
	const query = `
		INSERT INTO readings (day, hrv, resting_hr, skin_temp)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (day) DO UPDATE SET
			hrv = EXCLUDED.hrv,
			resting_hr = EXCLUDED.resting_hr,
			skin_temp = EXCLUDED.skin_temp
	`
	_, err := r.pool.Exec(ctx, query,
		reading.Day.Truncate(24*time.Hour),
		toPtr(reading.HRV),
		toPtr(reading.RestingHR),
		toPtr(reading.SkinTemp),
	)
	return err
}

func (r *ReadingRepo) ReadingsSince(ctx context.Context, since time.Time) ([]health.DailyReading, error) {
	const query = `
		SELECT day, hrv, resting_hr, skin_temp
		FROM readings
		WHERE day >= $1
		ORDER BY day ASC
	`
	rows, err := r.pool.Query(ctx, query, since.Truncate(24*time.Hour))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []health.DailyReading
	for rows.Next() {
		var (
			day             time.Time
			hrv, rhr, tempC *float64
		)
		if err := rows.Scan(&day, &hrv, &rhr, &tempC); err != nil {
			return nil, err
		}
		out = append(out, health.DailyReading{
			Day:       day,
			HRV:       fromPtr(hrv),
			RestingHR: fromPtr(rhr),
			SkinTemp:  fromPtr(tempC),
		})
	}
	return out, rows.Err()
}

func (r *ReadingRepo) Prune(ctx context.Context, before time.Time) error {
	const query = `DELETE FROM readings WHERE day < $1`
	_, err := r.pool.Exec(ctx, query, before.Truncate(24*time.Hour))
	return err
}

func toPtr(reading health.Reading) *float64 {
	if v, ok := reading.Value(); ok {
		return &v
	}
	return nil
}

func fromPtr(v *float64) health.Reading {
	if v == nil {
		return health.None()
	}
	return health.Some(*v)
}
