package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseParks(t *testing.T) {
	t.Run("empty input yields defaults", func(t *testing.T) {
		parks, err := ParseParks("")
		require.NoError(t, err)
		require.Equal(t, "Disneyland", parks[16])
		require.Equal(t, "Universal Studios Hollywood", parks[66])
		require.Len(t, parks, 5)
	})

	t.Run("custom list", func(t *testing.T) {
		parks, err := ParseParks(" 1:Test Park , 2:Other Park ")
		require.NoError(t, err)
		require.Equal(t, map[int]string{1: "Test Park", 2: "Other Park"}, parks)
	})

	t.Run("missing separator", func(t *testing.T) {
		_, err := ParseParks("42")
		require.Error(t, err)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		_, err := ParseParks("abc:Park")
		require.Error(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := ParseParks("7:")
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("requires a destination", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("OUT_CSV", "")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("csv-only destination is enough", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("OUT_CSV", "out.csv")
		t.Setenv("PARKS", "")
		t.Setenv("COLLECTOR_REQUEST_TIMEOUT", "")
		t.Setenv("QUEUE_TIMES_BASE_URL", "")
		t.Setenv("DRY_RUN", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "out.csv", cfg.OutCSV)
		require.Equal(t, "https://queue-times.com", cfg.BaseURL)
		require.Equal(t, 30*time.Second, cfg.RequestTimeout)
		require.False(t, cfg.DryRun)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/waits")
		t.Setenv("OUT_CSV", "")
		t.Setenv("PARKS", "9:Synthetic Park")
		t.Setenv("QUEUE_TIMES_BASE_URL", "https://upstream.test/")
		t.Setenv("COLLECTOR_REQUEST_TIMEOUT", "5s")
		t.Setenv("DRY_RUN", "true")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, map[int]string{9: "Synthetic Park"}, cfg.Parks)
		require.Equal(t, "https://upstream.test", cfg.BaseURL)
		require.Equal(t, 5*time.Second, cfg.RequestTimeout)
		require.True(t, cfg.DryRun)
		require.Equal(t, []int{9}, cfg.SortedParkIDs())
	})
}
