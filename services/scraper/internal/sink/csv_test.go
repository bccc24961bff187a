package sink

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quetzal-labs/queue-watch/services/scraper/internal/calendar"
)

func fl(v float64) *float64 { return &v }

func TestCSVSinkRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wait_times.csv")
	s := NewCSVSink(path)

	records := []calendar.CalendarDayRecord{
		{Date: "2024-01-01", Ride: "Space Coaster", AvgWait: fl(10), MaxWait: fl(25)},
		{Date: "2024-01-01", Ride: "Haunted House", AvgWait: nil, MaxWait: fl(40.5)},
	}
	require.NoError(t, s.Append(context.Background(), records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, []string{"Date", "Ride", "Average Wait Time (mins)", "Max Wait Time (mins)"}, rows[0])
	require.Equal(t, []string{"2024-01-01", "Space Coaster", "10", "25"}, rows[1])
	require.Equal(t, []string{"2024-01-01", "Haunted House", "", "40.5"}, rows[2])
}

func TestCSVSinkAppendsWithoutRepeatingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wait_times.csv")
	s := NewCSVSink(path)

	first := []calendar.CalendarDayRecord{{Date: "2024-01-01", Ride: "A", AvgWait: fl(1)}}
	second := []calendar.CalendarDayRecord{{Date: "2024-01-02", Ride: "B", MaxWait: fl(2)}}
	require.NoError(t, s.Append(context.Background(), first))
	require.NoError(t, s.Append(context.Background(), second))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "one header plus one row per append")
	require.Equal(t, "A", rows[1][1])
	require.Equal(t, "B", rows[2][1])
}

func TestCSVSinkEmptyBatchIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wait_times.csv")
	s := NewCSVSink(path)

	require.NoError(t, s.Append(context.Background(), nil))
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "an empty batch must not create the file")
}
