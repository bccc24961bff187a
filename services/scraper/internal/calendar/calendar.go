package calendar

import (
	"strings"
	"time"
)

// CalendarDayRecord is one ride's aggregated waits for one calendar day.
// A ride listed in only one of the two source tables keeps the other
// field nil, it is never dropped.
type CalendarDayRecord struct {
	Date    string
	Ride    string
	AvgWait *float64
	MaxWait *float64
}

// DateFromURL derives the ISO date from the trailing
// /calendar/YYYY/MM/DD path segments. URLs without that shape fall back
// to the supplied processing date; degraded but not fatal.
func DateFromURL(rawURL string, fallback time.Time) string {
	parts := strings.Split(strings.TrimRight(rawURL, "/"), "/")
	if len(parts) >= 7 {
		year, month, day := parts[len(parts)-3], parts[len(parts)-2], parts[len(parts)-1]
		return year + "-" + month + "-" + day
	}
	return fallback.Format("2006-01-02")
}
