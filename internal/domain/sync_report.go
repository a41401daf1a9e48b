package domain

import (
	"time"
)

// SyncDomain identifies one of the independent data domains covered by a
// sync run.
type SyncDomain string

const (
	SyncDomainCampaigns          SyncDomain = "campaigns"
	SyncDomainFlows              SyncDomain = "flows"
	SyncDomainSegments           SyncDomain = "segments"
	SyncDomainListGrowth         SyncDomain = "list_growth"
	SyncDomainRevenueAttribution SyncDomain = "revenue_attribution"
)

// AllSyncDomains lists every domain a full run covers, in report order.
var AllSyncDomains = []SyncDomain{
	SyncDomainCampaigns,
	SyncDomainFlows,
	SyncDomainSegments,
	SyncDomainListGrowth,
	SyncDomainRevenueAttribution,
}

type DomainStatus string

const (
	DomainStatusNotStarted DomainStatus = "not_started"
	DomainStatusRunning    DomainStatus = "running"
	DomainStatusSucceeded  DomainStatus = "succeeded"
	DomainStatusFailed     DomainStatus = "failed"
	// DomainStatusPartiallyFailed means the remote calls succeeded but one
	// or more individual entities could not be reconciled.
	DomainStatusPartiallyFailed DomainStatus = "partially_failed"
)

// ItemError records a single entity that failed reconciliation, keyed by
// the provider's own id so the caller can retry just that item.
type ItemError struct {
	ExternalID string `json:"external_id"`
	Message    string `json:"message"`
}

// DomainReport is the per-domain section of a run report. Message is only
// set when the whole domain failed, not for individual item errors.
type DomainReport struct {
	Domain         SyncDomain   `json:"domain"`
	Status         DomainStatus `json:"status"`
	ItemsTotal     int          `json:"items_total"`
	ItemsSucceeded int          `json:"items_succeeded"`
	ItemsFailed    int          `json:"items_failed"`
	Message        string       `json:"message,omitempty"`
	Errors         []ItemError  `json:"errors,omitempty"`
}

// RecordFailure marks one entity as failed and keeps the counters
// consistent.
func (r *DomainReport) RecordFailure(externalID string, err error) {
	r.ItemsFailed++
	r.Errors = append(r.Errors, ItemError{ExternalID: externalID, Message: err.Error()})
}

// RecordSuccess marks one entity as reconciled.
func (r *DomainReport) RecordSuccess() {
	r.ItemsSucceeded++
}

// Fail marks the whole domain as failed with the causing error.
func (r *DomainReport) Fail(err error) {
	r.Status = DomainStatusFailed
	r.Message = err.Error()
}

// Finish resolves the final status from the counters, unless a fatal error
// already marked the domain as failed.
func (r *DomainReport) Finish() {
	if r.Status == DomainStatusFailed {
		return
	}
	if r.ItemsFailed > 0 {
		r.Status = DomainStatusPartiallyFailed
		return
	}
	r.Status = DomainStatusSucceeded
}

// SyncReport is the value object returned by one orchestrator invocation.
// It is never persisted.
type SyncReport struct {
	TenantID    string                       `json:"tenant_id"`
	StartedAt   time.Time                    `json:"started_at"`
	CompletedAt time.Time                    `json:"completed_at"`
	Domains     map[SyncDomain]*DomainReport `json:"domains"`
}

func NewSyncReport(tenantID string) *SyncReport {
	report := &SyncReport{
		TenantID: tenantID,
		Domains:  make(map[SyncDomain]*DomainReport, len(AllSyncDomains)),
	}

	for _, d := range AllSyncDomains {
		report.Domains[d] = &DomainReport{Domain: d, Status: DomainStatusNotStarted}
	}

	return report
}
