package domain

import (
	"time"
)

// SegmentMetric is one row per (tenant, external segment id) with the
// profile count observed at sync time.
type SegmentMetric struct {
	ID           int64     `json:"id"`
	TenantID     string    `json:"tenant_id"`
	ExternalID   string    `json:"external_id"`
	Name         string    `json:"name"`
	ProfileCount int       `json:"profile_count"`
	SyncedAt     time.Time `json:"synced_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
