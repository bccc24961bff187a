package csvout

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/quetzal-labs/queue-watch/services/collector/internal/models"
)

var header = []string{"park", "ride", "wait_time", "day_of_week", "timestamp", "time", "month", "year"}

// WriteWaitTimes appends normalized live rows to a CSV file, creating it
// with a header row when missing.
func WriteWaitTimes(path string, records []models.WaitTimeRecord) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return err
		}
	}

	for _, r := range records {
		row := []string{
			r.Park,
			r.Ride,
			strconv.Itoa(r.WaitTime),
			r.DayOfWeek,
			r.Timestamp.Format(time.RFC3339),
			r.TimeOfDay,
			strconv.Itoa(r.Month),
			strconv.Itoa(r.Year),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
