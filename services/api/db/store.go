package db

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps database access helpers.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by a pgx pool.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// ParkSummary aggregates the stored live observations for one park.
type ParkSummary struct {
	Park     string     `json:"park"`
	Rides    int        `json:"rides"`
	Samples  int64      `json:"samples"`
	LatestTS *time.Time `json:"latest_ts,omitempty"`
}

const listParksSQL = `
    SELECT park, COUNT(DISTINCT ride) AS rides, COUNT(*) AS samples, MAX(ts) AS latest_ts
    FROM wait_times
    GROUP BY park
    ORDER BY park
`

// ListParks returns one summary row per park with stored observations.
func (s *Store) ListParks(ctx context.Context) ([]ParkSummary, error) {
	rows, err := s.pool.Query(ctx, listParksSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parks := make([]ParkSummary, 0)
	for rows.Next() {
		var p ParkSummary
		if err := rows.Scan(&p.Park, &p.Rides, &p.Samples, &p.LatestTS); err != nil {
			return nil, err
		}
		parks = append(parks, p)
	}
	return parks, rows.Err()
}

// RideLatest is the most recent stored observation for one ride.
type RideLatest struct {
	Ride      string    `json:"ride"`
	WaitTime  int       `json:"wait_time"`
	Timestamp time.Time `json:"ts"`
}

const rideLatestSQL = `
    SELECT DISTINCT ON (ride) ride, wait_time, ts
    FROM wait_times
    WHERE park = $1
    ORDER BY ride, ts DESC
`

// ListRideLatest returns each ride of a park with its latest observed wait.
func (s *Store) ListRideLatest(ctx context.Context, park string) ([]RideLatest, error) {
	rows, err := s.pool.Query(ctx, rideLatestSQL, park)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rides := make([]RideLatest, 0)
	for rows.Next() {
		var r RideLatest
		if err := rows.Scan(&r.Ride, &r.WaitTime, &r.Timestamp); err != nil {
			return nil, err
		}
		rides = append(rides, r)
	}
	return rides, rows.Err()
}

// WaitObservation is one stored live snapshot row.
type WaitObservation struct {
	Park      string    `json:"park"`
	Ride      string    `json:"ride"`
	WaitTime  int       `json:"wait_time"`
	DayOfWeek string    `json:"day_of_week"`
	Timestamp time.Time `json:"ts"`
	TimeOfDay string    `json:"time"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
}

// WaitQuery holds filters for retrieving live observations.
type WaitQuery struct {
	Park  string
	Ride  string
	Since *time.Time
	Until *time.Time
	Limit int
}

const waitsBase = `
    SELECT park, ride, wait_time, day_of_week, ts, time_of_day, month, year
    FROM wait_times
    WHERE park = $1
`

// FetchWaits returns live observations for a park based on the query.
func (s *Store) FetchWaits(ctx context.Context, q WaitQuery) ([]WaitObservation, error) {
	args := []any{q.Park}
	clause := ""
	argPos := 2
	if q.Ride != "" {
		clause += " AND ride = $" + strconv.Itoa(argPos)
		args = append(args, q.Ride)
		argPos++
	}
	if q.Since != nil {
		clause += " AND ts >= $" + strconv.Itoa(argPos)
		args = append(args, *q.Since)
		argPos++
	}
	if q.Until != nil {
		clause += " AND ts <= $" + strconv.Itoa(argPos)
		args = append(args, *q.Until)
		argPos++
	}
	order := " ORDER BY ts"
	limit := ""
	if q.Limit > 0 {
		limit = " LIMIT $" + strconv.Itoa(argPos)
		args = append(args, q.Limit)
	}

	sql := waitsBase + clause + order + limit

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	observations := make([]WaitObservation, 0)
	for rows.Next() {
		var o WaitObservation
		if err := rows.Scan(
			&o.Park,
			&o.Ride,
			&o.WaitTime,
			&o.DayOfWeek,
			&o.Timestamp,
			&o.TimeOfDay,
			&o.Month,
			&o.Year,
		); err != nil {
			return nil, err
		}
		observations = append(observations, o)
	}
	return observations, rows.Err()
}

// CalendarRow is one stored historical per-day aggregate.
type CalendarRow struct {
	ParkID  int       `json:"park_id"`
	Date    time.Time `json:"date"`
	Ride    string    `json:"ride"`
	AvgWait *float64  `json:"avg_wait_minutes,omitempty"`
	MaxWait *float64  `json:"max_wait_minutes,omitempty"`
}

// CalendarQuery holds filters for retrieving historical aggregates.
type CalendarQuery struct {
	ParkID int
	Ride   string
	From   *time.Time
	To     *time.Time
	Limit  int
}

const calendarBase = `
    SELECT park_id, date, ride, avg_wait_minutes, max_wait_minutes
    FROM calendar_wait_times
    WHERE park_id = $1
`

// FetchCalendar returns historical per-day rows based on the query.
func (s *Store) FetchCalendar(ctx context.Context, q CalendarQuery) ([]CalendarRow, error) {
	args := []any{q.ParkID}
	clause := ""
	argPos := 2
	if q.Ride != "" {
		clause += " AND ride = $" + strconv.Itoa(argPos)
		args = append(args, q.Ride)
		argPos++
	}
	if q.From != nil {
		clause += " AND date >= $" + strconv.Itoa(argPos)
		args = append(args, *q.From)
		argPos++
	}
	if q.To != nil {
		clause += " AND date <= $" + strconv.Itoa(argPos)
		args = append(args, *q.To)
		argPos++
	}
	order := " ORDER BY date, ride"
	limit := ""
	if q.Limit > 0 {
		limit = " LIMIT $" + strconv.Itoa(argPos)
		args = append(args, q.Limit)
	}

	sql := calendarBase + clause + order + limit

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CalendarRow, 0)
	for rows.Next() {
		var r CalendarRow
		if err := rows.Scan(&r.ParkID, &r.Date, &r.Ride, &r.AvgWait, &r.MaxWait); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
