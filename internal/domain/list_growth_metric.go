package domain

import (
	"time"
)

type GrowthInterval string

const (
	GrowthIntervalDay   GrowthInterval = "day"
	GrowthIntervalWeek  GrowthInterval = "week"
	GrowthIntervalMonth GrowthInterval = "month"
)

// ListGrowthMetric is one row per (tenant, date, interval). The derived
// fields are recomputed from the channel counts in the same row on every
// write; a previously stored derived value is never trusted once the
// inputs change.
type ListGrowthMetric struct {
	ID                   int64          `json:"id"`
	TenantID             string         `json:"tenant_id"`
	Date                 time.Time      `json:"date"`
	Interval             GrowthInterval `json:"interval"`
	EmailSubscriptions   int            `json:"email_subscriptions"`
	EmailUnsubscriptions int            `json:"email_unsubscriptions"`
	SMSSubscriptions     int            `json:"sms_subscriptions"`
	SMSUnsubscriptions   int            `json:"sms_unsubscriptions"`
	FormSubmissions      int            `json:"form_submissions"`
	NetGrowth            int            `json:"net_growth"`
	GrowthRate           float64        `json:"growth_rate"`
	ChurnRate            float64        `json:"churn_rate"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

// RecomputeDerived recalculates net growth and the growth/churn rate
// fractions from the per-channel counts. Rates are 0 whenever there were no
// subscriptions, never NaN.
func (m *ListGrowthMetric) RecomputeDerived() {
	subs := m.EmailSubscriptions + m.SMSSubscriptions
	unsubs := m.EmailUnsubscriptions + m.SMSUnsubscriptions

	m.NetGrowth = subs - unsubs

	if subs > 0 {
		m.GrowthRate = float64(m.NetGrowth) / float64(subs)
		m.ChurnRate = float64(unsubs) / float64(subs)
	} else {
		m.GrowthRate = 0
		m.ChurnRate = 0
	}
}
