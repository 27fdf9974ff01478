package testdata

import "time"

// Event is the struct schema.yaml describes.
type Event struct {
	Title   string `json:"title"`
	At      time.Time
	Retries int
}
