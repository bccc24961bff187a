package calendar

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// RangeSummary reports the per-day outcome counts of one range scrape.
type RangeSummary struct {
	Days      int
	Succeeded int
	NotFound  int
	Failed    int
}

// ScrapeRange scrapes every day of the inclusive [start, end] interval
// for one park, day by day in calendar order. Failed days are logged and
// skipped; the range as a whole never aborts. The combined slice is
// chronological and never nil.
func ScrapeRange(ctx context.Context, client *resty.Client, baseURL string, parkID int, start, end time.Time) ([]CalendarDayRecord, RangeSummary) {
	combined := make([]CalendarDayRecord, 0)
	summary := RangeSummary{}

	totalDays := int(end.Sub(start).Hours()/24) + 1
	log.Printf("scraping park %d from %s to %s (%d days)", parkID, start.Format("2006-01-02"), end.Format("2006-01-02"), totalDays)

	day := 0
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		day++
		summary.Days++

		url := fmt.Sprintf("%s/parks/%d/calendar/%04d/%02d/%02d", baseURL, parkID, current.Year(), int(current.Month()), current.Day())
		result := ScrapeDay(ctx, client, url)

		switch result.Outcome {
		case OutcomeOK:
			combined = append(combined, result.Records...)
			summary.Succeeded++
			log.Printf("[%d/%d] %s: %d rides", day, totalDays, result.Date, len(result.Records))
		case OutcomeEmpty:
			summary.Failed++
			log.Printf("[%d/%d] %s: no result tables", day, totalDays, result.Date)
		case OutcomeNotFound:
			summary.NotFound++
			log.Printf("[%d/%d] %s: date does not exist upstream", day, totalDays, result.Date)
		default:
			summary.Failed++
			log.Printf("[%d/%d] %s: failed: %v", day, totalDays, result.Date, result.Err)
		}
	}

	return combined, summary
}
