package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quetzal-labs/queue-watch/services/collector/internal/collect"
	"github.com/quetzal-labs/queue-watch/services/collector/internal/config"
	"github.com/quetzal-labs/queue-watch/services/collector/internal/csvout"
	"github.com/quetzal-labs/queue-watch/services/collector/internal/db"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("collector failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	parkIDs := cfg.SortedParkIDs()
	perPark := cfg.RequestTimeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(len(parkIDs))*perPark+10*time.Second)
	defer cancel()

	client := &http.Client{Timeout: perPark}

	records, summary := collect.CollectAll(ctx, client, cfg.BaseURL, parkIDs, cfg.Parks)
	log.Printf("collected %d rows (parks: %d ok, %d failed)", len(records), summary.Succeeded, summary.Failed)

	if summary.Succeeded == 0 && summary.Failed > 0 {
		return errors.New("every configured park failed to fetch")
	}

	if len(records) == 0 {
		log.Printf("no rows to append")
		return nil
	}

	if cfg.DryRun {
		for _, r := range records {
			log.Printf("dry-run: would append park=%s ride=%q wait=%d ts=%s", r.Park, r.Ride, r.WaitTime, r.Timestamp.Format(time.RFC3339))
		}
		return nil
	}

	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := db.InsertWaitTimes(ctx, pool, records); err != nil {
			return err
		}
		log.Printf("inserted %d rows into wait_times", len(records))
	}

	if cfg.OutCSV != "" {
		if err := csvout.WriteWaitTimes(cfg.OutCSV, records); err != nil {
			return err
		}
		log.Printf("appended %d rows to %s", len(records), cfg.OutCSV)
	}

	return nil
}
