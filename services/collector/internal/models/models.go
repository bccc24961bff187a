package models

import "time"

// ParkResponse models the JSON payload returned by the live queue-times feed.
type ParkResponse struct {
	Lands []Land `json:"lands"`
	Rides []Ride `json:"rides"`
}

// Land groups the rides of one themed area within a park.
type Land struct {
	Name  string `json:"name"`
	Rides []Ride `json:"rides"`
}

// Ride is a single attraction entry from the live feed. LastUpdated is nil
// when the upstream has never reported a wait for this ride.
type Ride struct {
	Name        string  `json:"name"`
	WaitTime    int     `json:"wait_time"`
	IsOpen      bool    `json:"is_open"`
	LastUpdated *string `json:"last_updated"`
}

// WaitTimeRecord is one normalized live observation, ready for the sink.
type WaitTimeRecord struct {
	Park      string
	Ride      string
	WaitTime  int
	DayOfWeek string
	Timestamp time.Time
	TimeOfDay string
	Month     int
	Year      int
}
