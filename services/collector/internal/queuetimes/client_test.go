package queuetimes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchParkQueueTimes(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"lands":[{"name":"Adventureland","rides":[{"name":"Jungle Cruise","wait_time":25,"is_open":true,"last_updated":"2024-06-15T18:30:00Z"}]}],"rides":[]}`))
	}))
	defer srv.Close()

	payload, err := FetchParkQueueTimes(context.Background(), srv.Client(), srv.URL, 16)
	require.NoError(t, err)
	require.Equal(t, "/parks/16/queue_times.json", gotPath)
	require.Len(t, payload.Lands, 1)
	require.Equal(t, "Jungle Cruise", payload.Lands[0].Rides[0].Name)
	require.Equal(t, 25, payload.Lands[0].Rides[0].WaitTime)
	require.NotNil(t, payload.Lands[0].Rides[0].LastUpdated)
}

func TestFetchParkQueueTimesBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := FetchParkQueueTimes(context.Background(), srv.Client(), srv.URL, 16)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status")
}

func TestFetchParkQueueTimesBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := FetchParkQueueTimes(context.Background(), srv.Client(), srv.URL, 16)
	require.Error(t, err)
}
