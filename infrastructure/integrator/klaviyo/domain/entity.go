package domain

import (
	"time"
)

// Page is one page of a cursor-paginated listing. NextCursor is opaque and
// empty on the last page.
type Page[T any] struct {
	Items      []T
	NextCursor string
}

type Campaign struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	Channel     string     `json:"channel"`
	SubjectLine string     `json:"subject_line"`
	SendTime    *time.Time `json:"send_time"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Flow struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	TriggerType string    `json:"trigger_type"`
	CreatedAt   time.Time `json:"created_at"`
}

type Segment struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ProfileCount int       `json:"profile_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Metric is a provider-side event definition (e.g. "Placed Order"). Its ID
// is the conversion metric id required by the report endpoints.
type Metric struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Integration string `json:"integration"`
}
