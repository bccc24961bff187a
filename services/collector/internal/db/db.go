package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quetzal-labs/queue-watch/services/collector/internal/models"
)

// InsertWaitTimes appends normalized live rows to wait_times.
func InsertWaitTimes(ctx context.Context, pool *pgxpool.Pool, records []models.WaitTimeRecord) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `INSERT INTO wait_times (park, ride, wait_time, day_of_week, ts, time_of_day, month, year)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

	for _, r := range records {
		batch.Queue(query, r.Park, r.Ride, r.WaitTime, r.DayOfWeek, r.Timestamp, r.TimeOfDay, r.Month, r.Year)
	}

	res := pool.SendBatch(ctx, batch)
	defer res.Close()

	for range records {
		if _, err := res.Exec(); err != nil {
			return err
		}
	}

	return nil
}
