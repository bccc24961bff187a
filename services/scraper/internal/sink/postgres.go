package sink

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quetzal-labs/queue-watch/services/scraper/internal/calendar"
)

// PostgresSink appends calendar records to calendar_wait_times. Re-runs
// over an already-scraped range update the stored values in place.
type PostgresSink struct {
	pool   *pgxpool.Pool
	parkID int
}

// NewPostgresSink returns a sink writing rows for one park.
func NewPostgresSink(pool *pgxpool.Pool, parkID int) *PostgresSink {
	return &PostgresSink{pool: pool, parkID: parkID}
}

// Append batch-inserts the records.
func (s *PostgresSink) Append(ctx context.Context, records []calendar.CalendarDayRecord) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `INSERT INTO calendar_wait_times (park_id, date, ride, avg_wait_minutes, max_wait_minutes)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (park_id, date, ride) DO UPDATE
SET avg_wait_minutes = EXCLUDED.avg_wait_minutes,
    max_wait_minutes = EXCLUDED.max_wait_minutes`

	for _, r := range records {
		batch.Queue(query, s.parkID, r.Date, r.Ride, r.AvgWait, r.MaxWait)
	}

	res := s.pool.SendBatch(ctx, batch)
	defer res.Close()

	for range records {
		if _, err := res.Exec(); err != nil {
			return err
		}
	}

	return nil
}
