package calendar

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// tableSelector matches the wide striped results tables on a calendar page.
const tableSelector = "table.table.is-fullwidth"

// Outcome tags the result of scraping one calendar day.
type Outcome int

const (
	// OutcomeOK means the day yielded at least one record.
	OutcomeOK Outcome = iota
	// OutcomeEmpty means the page had no result tables (no data upstream).
	OutcomeEmpty
	// OutcomeNotFound means the calendar date does not exist upstream (404).
	OutcomeNotFound
	// OutcomeFetchFailed covers transport errors and unexpected statuses.
	OutcomeFetchFailed
	// OutcomeParseFailed means the body could not be interpreted as a page.
	OutcomeParseFailed
)

// DayResult is the tagged outcome of one day's scrape. Err is set only
// for the failure outcomes.
type DayResult struct {
	Date    string
	Outcome Outcome
	Records []CalendarDayRecord
	Err     error
}

// ScrapeDay fetches and parses one calendar page. Failures never
// propagate as errors; every path collapses into a tagged DayResult so a
// range scrape can keep moving.
func ScrapeDay(ctx context.Context, client *resty.Client, url string) DayResult {
	date := DateFromURL(url, time.Now())
	result := DayResult{Date: date}

	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		result.Outcome = OutcomeFetchFailed
		result.Err = fmt.Errorf("request calendar page: %w", err)
		return result
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		result.Outcome = OutcomeNotFound
		result.Err = fmt.Errorf("date %s does not exist upstream (404)", date)
		return result
	case resp.StatusCode() < 200 || resp.StatusCode() >= 300:
		result.Outcome = OutcomeFetchFailed
		result.Err = fmt.Errorf("unexpected status %s for %s", resp.Status(), date)
		return result
	}

	records, err := ParseCalendar(date, resp.Body())
	if err != nil {
		result.Outcome = OutcomeParseFailed
		result.Err = err
		return result
	}
	if len(records) == 0 {
		result.Outcome = OutcomeEmpty
		return result
	}

	result.Outcome = OutcomeOK
	result.Records = records
	return result
}

// ParseCalendar extracts the per-ride average and max wait series from a
// calendar page body and joins them by ride name. An absent table leaves
// its side of every record nil; a page with no result tables yields zero
// records and no error.
func ParseCalendar(date string, body []byte) ([]CalendarDayRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse calendar page: %w", err)
	}

	tables := doc.Find(tableSelector)
	if tables.Length() == 0 {
		return nil, nil
	}

	avgTable, maxTable := classifyTables(tables)

	byRide := map[string]*CalendarDayRecord{}
	order := []string{}

	upsert := func(ride string) *CalendarDayRecord {
		if rec, ok := byRide[ride]; ok {
			return rec
		}
		rec := &CalendarDayRecord{Date: date, Ride: ride}
		byRide[ride] = rec
		order = append(order, ride)
		return rec
	}

	if avgTable != nil {
		eachRideRow(date, avgTable, func(ride string, wait float64) {
			v := wait
			upsert(ride).AvgWait = &v
		})
	}
	if maxTable != nil {
		eachRideRow(date, maxTable, func(ride string, wait float64) {
			v := wait
			upsert(ride).MaxWait = &v
		})
	}

	records := make([]CalendarDayRecord, 0, len(order))
	for _, ride := range order {
		records = append(records, *byRide[ride])
	}
	return records, nil
}

// classifyTables picks the average and max wait tables, preferring the
// header label over position. The page has historically put the average
// series first and the max series second, so order of appearance remains
// the fallback when neither label matches.
func classifyTables(tables *goquery.Selection) (avgTable, maxTable *goquery.Selection) {
	tables.Each(func(_ int, t *goquery.Selection) {
		label := strings.ToLower(t.Find("thead").Text())
		switch {
		case avgTable == nil && strings.Contains(label, "average"):
			avgTable = t
		case maxTable == nil && strings.Contains(label, "max"):
			maxTable = t
		}
	})

	if avgTable == nil && maxTable == nil {
		avgTable = tables.Eq(0)
		if tables.Length() > 1 {
			maxTable = tables.Eq(1)
		}
	}
	return avgTable, maxTable
}

// eachRideRow walks a table body and reports (ride, wait) per row. The
// ride name prefers a nested link's text, the wait value a nested
// highlighted span; either falls back to the raw cell text. Rows with a
// non-numeric wait cell are logged and skipped.
func eachRideRow(date string, table *goquery.Selection, fn func(ride string, wait float64)) {
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cols := row.Find("td")
		if cols.Length() < 2 {
			return
		}

		nameCell := cols.Eq(0)
		ride := strings.TrimSpace(nameCell.Find("a").First().Text())
		if ride == "" {
			ride = strings.TrimSpace(nameCell.Text())
		}
		if ride == "" {
			return
		}

		waitCell := cols.Eq(1)
		raw := strings.TrimSpace(waitCell.Find("span").First().Text())
		if raw == "" {
			raw = strings.TrimSpace(waitCell.Text())
		}

		wait, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Printf("%s: ride %q has non-numeric wait cell %q, row skipped", date, ride, raw)
			return
		}
		fn(ride, wait)
	})
}
