package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL        = "https://queue-times.com"
	defaultRequestTimeout = 30 * time.Second
)

// defaultParks is the park set polled when PARKS is not configured.
var defaultParks = map[int]string{
	16: "Disneyland",
	17: "Disney California Adventure",
	42: "Six Flags Magic Mountain",
	61: "Knott's Berry Farm",
	66: "Universal Studios Hollywood",
}

// Config holds runtime configuration for the collector service.
type Config struct {
	DatabaseURL    string
	OutCSV         string
	BaseURL        string
	Parks          map[int]string
	RequestTimeout time.Duration
	DryRun         bool
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.OutCSV = strings.TrimSpace(os.Getenv("OUT_CSV"))
	if cfg.DatabaseURL == "" && cfg.OutCSV == "" {
		return cfg, errors.New("either DATABASE_URL or OUT_CSV is required")
	}

	cfg.BaseURL = strings.TrimSpace(os.Getenv("QUEUE_TIMES_BASE_URL"))
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	parks, err := ParseParks(os.Getenv("PARKS"))
	if err != nil {
		return cfg, err
	}
	cfg.Parks = parks

	cfg.RequestTimeout = defaultRequestTimeout
	if v := strings.TrimSpace(os.Getenv("COLLECTOR_REQUEST_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid COLLECTOR_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}

	dryRun := strings.TrimSpace(os.Getenv("DRY_RUN"))
	cfg.DryRun = dryRun == "1" || strings.EqualFold(dryRun, "true")

	return cfg, nil
}

// ParseParks parses a "id:name,id:name" list into a park map. An empty
// input yields the default park set.
func ParseParks(raw string) (map[int]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		parks := make(map[int]string, len(defaultParks))
		for id, name := range defaultParks {
			parks[id] = name
		}
		return parks, nil
	}

	parks := make(map[int]string)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		id, name, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("invalid PARKS entry %q: want id:name", entry)
		}
		parkID, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil {
			return nil, fmt.Errorf("invalid PARKS entry %q: %w", entry, err)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid PARKS entry %q: empty park name", entry)
		}
		parks[parkID] = name
	}
	if len(parks) == 0 {
		return nil, errors.New("PARKS is set but contains no entries")
	}
	return parks, nil
}

// SortedParkIDs returns the configured park identifiers in ascending order
// so each run polls parks in a stable sequence.
func (c Config) SortedParkIDs() []int {
	ids := make([]int, 0, len(c.Parks))
	for id := range c.Parks {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
