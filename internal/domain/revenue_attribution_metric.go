package domain

import (
	"time"
)

// RevenueAttributionMetric is one row per (tenant, date): revenue and order
// counts split by attributed channel, plus each channel's share of total
// revenue. Shares are computed at write time and are 0 when the day's total
// is 0 (never NaN or Inf).
type RevenueAttributionMetric struct {
	ID           int64     `json:"id"`
	TenantID     string    `json:"tenant_id"`
	Date         time.Time `json:"date"`
	EmailRevenue float64   `json:"email_revenue"`
	SMSRevenue   float64   `json:"sms_revenue"`
	TotalRevenue float64   `json:"total_revenue"`
	EmailOrders  int       `json:"email_orders"`
	SMSOrders    int       `json:"sms_orders"`
	TotalOrders  int       `json:"total_orders"`
	EmailShare   float64   `json:"email_share"`
	SMSShare     float64   `json:"sms_share"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RecomputeShares recalculates totals and each channel's percentage share
// of total revenue, guarding the zero-revenue day.
func (m *RevenueAttributionMetric) RecomputeShares() {
	m.TotalRevenue = m.EmailRevenue + m.SMSRevenue
	m.TotalOrders = m.EmailOrders + m.SMSOrders

	if m.TotalRevenue > 0 {
		m.EmailShare = m.EmailRevenue / m.TotalRevenue
		m.SMSShare = m.SMSRevenue / m.TotalRevenue
	} else {
		m.EmailShare = 0
		m.SMSShare = 0
	}
}
