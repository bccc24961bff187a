package collect

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/quetzal-labs/queue-watch/services/collector/internal/models"
	"github.com/quetzal-labs/queue-watch/services/collector/internal/queuetimes"
)

// dayOfWeekNames follows the Monday-first weekday convention of the
// upstream reports, index 0 = Monday .. 6 = Sunday.
var dayOfWeekNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Summary reports the per-park outcome of one collection run.
type Summary struct {
	Succeeded int
	Failed    int
}

// CollectAll polls every configured park and returns the normalized rows.
// A failed park fetch is logged and counted, never fatal to the run.
func CollectAll(ctx context.Context, client *http.Client, baseURL string, parkIDs []int, parks map[int]string) ([]models.WaitTimeRecord, Summary) {
	records := make([]models.WaitTimeRecord, 0)
	summary := Summary{}

	for _, parkID := range parkIDs {
		payload, err := queuetimes.FetchParkQueueTimes(ctx, client, baseURL, parkID)
		if err != nil {
			log.Printf("park %d (%s): fetch failed: %v", parkID, parks[parkID], err)
			summary.Failed++
			continue
		}

		rows := BuildRecords(parks[parkID], payload)
		log.Printf("park %d (%s): %d rides with known timestamps", parkID, parks[parkID], len(rows))
		records = append(records, rows...)
		summary.Succeeded++
	}

	return records, summary
}

// BuildRecords flattens a park's land/ride tree into normalized rows.
// Rides without a last_updated timestamp contribute no row.
func BuildRecords(parkName string, payload models.ParkResponse) []models.WaitTimeRecord {
	rides := make([]models.Ride, 0, len(payload.Rides))
	for _, land := range payload.Lands {
		rides = append(rides, land.Rides...)
	}
	rides = append(rides, payload.Rides...)

	records := make([]models.WaitTimeRecord, 0, len(rides))
	for _, ride := range rides {
		if ride.LastUpdated == nil {
			continue
		}

		ts, err := ParseTimestamp(*ride.LastUpdated)
		if err != nil {
			log.Printf("park %s ride %q: bad last_updated %q: %v", parkName, ride.Name, *ride.LastUpdated, err)
			continue
		}

		records = append(records, models.WaitTimeRecord{
			Park:      parkName,
			Ride:      ride.Name,
			WaitTime:  ride.WaitTime,
			DayOfWeek: DayOfWeekName(ts),
			Timestamp: ts,
			TimeOfDay: ts.Format("15:04:05"),
			Month:     int(ts.Month()),
			Year:      ts.Year(),
		})
	}
	return records
}

// ParseTimestamp parses an ISO-8601 instant, normalizing a trailing UTC
// marker into an explicit offset first.
func ParseTimestamp(raw string) (time.Time, error) {
	if strings.HasSuffix(raw, "Z") {
		raw = strings.TrimSuffix(raw, "Z") + "+00:00"
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp: %w", err)
	}
	return ts, nil
}

// DayOfWeekName maps a timestamp to its Monday-first English weekday name.
func DayOfWeekName(ts time.Time) string {
	idx := (int(ts.Weekday()) + 6) % 7
	return dayOfWeekNames[idx]
}
