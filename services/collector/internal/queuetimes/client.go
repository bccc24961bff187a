package queuetimes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/quetzal-labs/queue-watch/services/collector/internal/models"
)

// FetchParkQueueTimes retrieves the current land/ride tree for one park.
func FetchParkQueueTimes(ctx context.Context, client *http.Client, baseURL string, parkID int) (models.ParkResponse, error) {
	url := fmt.Sprintf("%s/parks/%d/queue_times.json", baseURL, parkID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.ParkResponse{}, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return models.ParkResponse{}, fmt.Errorf("request queue times for park %d: %w", parkID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.ParkResponse{}, fmt.Errorf("unexpected status %s for park %d", resp.Status, parkID)
	}

	var payload models.ParkResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.ParkResponse{}, fmt.Errorf("decode payload for park %d: %w", parkID, err)
	}

	return payload, nil
}
