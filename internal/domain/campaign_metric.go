package domain

import (
	"time"
)

// CampaignMetric is one row per (tenant, external campaign id). SentAt is
// nil for drafts; draft rows are excluded from every time-windowed summary.
// Rates are stored as fractions in [0,1].
type CampaignMetric struct {
	ID              int64      `json:"id"`
	TenantID        string     `json:"tenant_id"`
	ExternalID      string     `json:"external_id"`
	Name            string     `json:"name"`
	SubjectLine     string     `json:"subject_line"`
	SentAt          *time.Time `json:"sent_at"`
	Recipients      int        `json:"recipients"`
	Delivered       int        `json:"delivered"`
	OpensUnique     int        `json:"opens_unique"`
	ClicksUnique    int        `json:"clicks_unique"`
	Bounced         int        `json:"bounced"`
	Unsubscribed    int        `json:"unsubscribed"`
	ConversionValue float64    `json:"conversion_value"`
	OpenRate        float64    `json:"open_rate"`
	ClickRate       float64    `json:"click_rate"`
	BounceRate      float64    `json:"bounce_rate"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsSent reports whether the campaign left draft state.
func (c *CampaignMetric) IsSent() bool {
	return c.SentAt != nil
}

// RecomputeRates derives the rate fractions from the stored counts. Derived
// values are never trusted across writes; callers recompute before upsert.
func (c *CampaignMetric) RecomputeRates() {
	c.OpenRate = safeRate(c.OpensUnique, c.Delivered)
	c.ClickRate = safeRate(c.ClicksUnique, c.Delivered)
	c.BounceRate = safeRate(c.Bounced, c.Recipients)
}

func safeRate(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
