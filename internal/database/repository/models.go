package repository

import "time"

// Submission represents one executed intent recorded in the log.
type Submission struct {
	ID           string
	Intent       string
	Payload      map[string]any
	PageCategory *string
	CreatedAt    time.Time
}
