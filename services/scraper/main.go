package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/go-resty/resty/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quetzal-labs/queue-watch/services/scraper/internal/calendar"
	"github.com/quetzal-labs/queue-watch/services/scraper/internal/config"
	"github.com/quetzal-labs/queue-watch/services/scraper/internal/sink"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

func main() {
	if err := run(); err != nil {
		log.Fatalf("scraper failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", userAgent)

	records, summary := calendar.ScrapeRange(ctx, client, cfg.BaseURL, cfg.ParkID, cfg.StartDate, cfg.EndDate)
	log.Printf("range done: %d days (%d ok, %d not found, %d failed), %d rows",
		summary.Days, summary.Succeeded, summary.NotFound, summary.Failed, len(records))

	if len(records) == 0 {
		log.Printf("no data was scraped")
		return nil
	}

	sinks := make([]sink.Sink, 0, 2)
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		sinks = append(sinks, sink.NewPostgresSink(pool, cfg.ParkID))
	}
	if cfg.OutCSV != "" {
		sinks = append(sinks, sink.NewCSVSink(cfg.OutCSV))
	}

	for _, s := range sinks {
		if err := s.Append(ctx, records); err != nil {
			return err
		}
	}

	log.Printf("appended %d rows to %d sink(s)", len(records), len(sinks))
	return nil
}
