package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func dayPage(ride, avg string) string {
	return `<html><body>
<table class="table is-fullwidth">
  <thead><tr><th>Ride</th><th>Average Wait Time</th></tr></thead>
  <tbody><tr><td>` + ride + `</td><td>` + avg + `</td></tr></tbody>
</table>
</body></html>`
}

func TestScrapeRangeSkipsFailedDays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/parks/17/calendar/2024/01/01":
			_, _ = w.Write([]byte(dayPage("Coaster", "10")))
		case "/parks/17/calendar/2024/01/02":
			http.NotFound(w, r)
		case "/parks/17/calendar/2024/01/03":
			_, _ = w.Write([]byte(dayPage("Coaster", "20")))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	records, summary := ScrapeRange(context.Background(), resty.New(), srv.URL, 17, start, end)

	require.Equal(t, 3, summary.Days)
	require.Equal(t, 2, summary.Succeeded)
	require.Equal(t, 1, summary.NotFound)
	require.Equal(t, 0, summary.Failed)

	require.Len(t, records, 2)
	require.Equal(t, "2024-01-01", records[0].Date, "combined table stays chronological")
	require.Equal(t, "2024-01-03", records[1].Date)
}

func TestScrapeRangeAllFailing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)

	records, summary := ScrapeRange(context.Background(), resty.New(), srv.URL, 17, start, end)

	require.NotNil(t, records, "combined table is empty, never nil")
	require.Empty(t, records)
	require.Equal(t, 2, summary.Days)
	require.Equal(t, 0, summary.Succeeded)
	require.Equal(t, 2, summary.NotFound)
}

func TestScrapeRangeSingleDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(dayPage("Solo", "5")))
	}))
	defer srv.Close()

	day := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	records, summary := ScrapeRange(context.Background(), resty.New(), srv.URL, 17, day, day)

	require.Equal(t, 1, summary.Days)
	require.Equal(t, 1, summary.Succeeded)
	require.Len(t, records, 1)
	require.Equal(t, "2024-05-06", records[0].Date)
}
