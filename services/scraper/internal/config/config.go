package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL        = "https://queue-times.com"
	defaultOutCSV         = "wait_times.csv"
	defaultRequestTimeout = 10 * time.Second
)

// Config holds runtime configuration for one historical range scrape.
type Config struct {
	ParkID         int
	StartDate      time.Time
	EndDate        time.Time
	BaseURL        string
	OutCSV         string
	DatabaseURL    string
	RequestTimeout time.Duration
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{}

	parkID := strings.TrimSpace(os.Getenv("PARK_ID"))
	if parkID == "" {
		return cfg, errors.New("PARK_ID is required")
	}
	id, err := strconv.Atoi(parkID)
	if err != nil {
		return cfg, fmt.Errorf("invalid PARK_ID: %w", err)
	}
	cfg.ParkID = id

	cfg.StartDate, err = parseDate("START_DATE")
	if err != nil {
		return cfg, err
	}
	cfg.EndDate, err = parseDate("END_DATE")
	if err != nil {
		return cfg, err
	}
	if cfg.EndDate.Before(cfg.StartDate) {
		return cfg, fmt.Errorf("END_DATE %s is before START_DATE %s",
			cfg.EndDate.Format("2006-01-02"), cfg.StartDate.Format("2006-01-02"))
	}

	cfg.BaseURL = strings.TrimSpace(os.Getenv("QUEUE_TIMES_BASE_URL"))
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	cfg.OutCSV = strings.TrimSpace(os.Getenv("OUT_CSV"))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.OutCSV == "" && cfg.DatabaseURL == "" {
		cfg.OutCSV = defaultOutCSV
	}

	cfg.RequestTimeout = defaultRequestTimeout
	if v := strings.TrimSpace(os.Getenv("SCRAPER_REQUEST_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid SCRAPER_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}

	return cfg, nil
}

func parseDate(key string) (time.Time, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required (YYYY-MM-DD)", key)
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %w", key, err)
	}
	return t, nil
}
