package domain

import (
	"time"
)

type FlowStatus string

const (
	FlowStatusLive     FlowStatus = "live"
	FlowStatusManual   FlowStatus = "manual"
	FlowStatusDraft    FlowStatus = "draft"
	FlowStatusArchived FlowStatus = "archived"
)

// FlowMetric is flow identity only: one row per (tenant, external flow id).
type FlowMetric struct {
	ID          int64      `json:"id"`
	TenantID    string     `json:"tenant_id"`
	ExternalID  string     `json:"external_id"`
	Name        string     `json:"name"`
	Status      FlowStatus `json:"status"`
	TriggerType string     `json:"trigger_type"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// FlowMessageMetric holds one week of performance for one message in a flow
// sequence, keyed by (tenant, flow id, message id, week start). A flow's
// total revenue over a window is always the sum of these rows for that
// window; there is no separately stored rolling counter.
type FlowMessageMetric struct {
	ID              int64     `json:"id"`
	TenantID        string    `json:"tenant_id"`
	FlowID          string    `json:"flow_id"`
	MessageID       string    `json:"message_id"`
	WeekStart       time.Time `json:"week_start"`
	OpensUnique     int       `json:"opens_unique"`
	ClicksUnique    int       `json:"clicks_unique"`
	Conversions     int       `json:"conversions"`
	ConversionValue float64   `json:"conversion_value"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
