package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/quetzal-labs/queue-watch/services/scraper/internal/calendar"
)

var csvHeader = []string{"Date", "Ride", "Average Wait Time (mins)", "Max Wait Time (mins)"}

// CSVSink appends calendar records to a flat file, writing the header
// row when the file is new or empty.
type CSVSink struct {
	Path string
}

// NewCSVSink returns a sink targeting the given file path.
func NewCSVSink(path string) *CSVSink {
	return &CSVSink{Path: path}
}

// Append writes the batch and flushes before returning, so an
// interrupted run keeps everything appended so far.
func (s *CSVSink) Append(ctx context.Context, records []calendar.CalendarDayRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			return err
		}
	}

	for _, r := range records {
		row := []string{r.Date, r.Ride, formatWait(r.AvgWait), formatWait(r.MaxWait)}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// formatWait renders an absent wait value as an empty cell.
func formatWait(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
