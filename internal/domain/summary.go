package domain

import (
	"time"
)

// MetricWindow is a caller-supplied trailing date range used to filter and
// summarize stored metrics.
type MetricWindow struct {
	Start time.Time
	End   time.Time
	Days  int
}

// NewTrailingWindow builds the window [now - days, now].
func NewTrailingWindow(now time.Time, days int) MetricWindow {
	return MetricWindow{
		Start: now.AddDate(0, 0, -days),
		End:   now,
		Days:  days,
	}
}

// Previous returns the immediately preceding window of equal length.
func (w MetricWindow) Previous() MetricWindow {
	return MetricWindow{
		Start: w.Start.AddDate(0, 0, -w.Days),
		End:   w.Start,
		Days:  w.Days,
	}
}

// Contains reports whether t falls inside the window (inclusive bounds).
func (w MetricWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// MetricComparison is a period-over-period delta for a single value.
type MetricComparison struct {
	Current        float64 `json:"current"`
	Previous       float64 `json:"previous"`
	AbsoluteChange float64 `json:"absolute_change"`
	PercentChange  float64 `json:"percent_change"`
	Trend          Trend   `json:"trend"`
}

// CampaignSummary is the windowed read-path view over sent campaigns.
// Rate fields are the simple mean of each campaign's own rate, not
// total-over-total: a handful of huge campaigns must not dominate the
// "typical campaign" view.
type CampaignSummary struct {
	TotalCampaigns    int     `json:"total_campaigns"`
	TotalRecipients   int     `json:"total_recipients"`
	TotalDelivered    int     `json:"total_delivered"`
	TotalOpens        int     `json:"total_opens"`
	TotalClicks       int     `json:"total_clicks"`
	TotalUnsubscribed int     `json:"total_unsubscribed"`
	TotalRevenue      float64 `json:"total_revenue"`
	AvgOpenRate       float64 `json:"avg_open_rate"`
	AvgClickRate      float64 `json:"avg_click_rate"`
	AvgBounceRate     float64 `json:"avg_bounce_rate"`
}

// FlowSummaryItem aggregates one flow's weekly message rows over the
// selected window.
type FlowSummaryItem struct {
	FlowID       string  `json:"flow_id"`
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	OpensUnique  int     `json:"opens_unique"`
	ClicksUnique int     `json:"clicks_unique"`
	Conversions  int     `json:"conversions"`
	Revenue      float64 `json:"revenue"`
}

type FlowSummary struct {
	TotalFlows   int               `json:"total_flows"`
	TotalRevenue float64           `json:"total_revenue"`
	Flows        []FlowSummaryItem `json:"flows"`
}

type ListGrowthSummary struct {
	TotalSubscriptions   int     `json:"total_subscriptions"`
	TotalUnsubscriptions int     `json:"total_unsubscriptions"`
	TotalFormSubmissions int     `json:"total_form_submissions"`
	NetGrowth            int     `json:"net_growth"`
	AvgGrowthRate        float64 `json:"avg_growth_rate"`
	AvgChurnRate         float64 `json:"avg_churn_rate"`
}

type RevenueSummary struct {
	EmailRevenue float64 `json:"email_revenue"`
	SMSRevenue   float64 `json:"sms_revenue"`
	TotalRevenue float64 `json:"total_revenue"`
	EmailOrders  int     `json:"email_orders"`
	SMSOrders    int     `json:"sms_orders"`
	TotalOrders  int     `json:"total_orders"`
	EmailShare   float64 `json:"email_share"`
	SMSShare     float64 `json:"sms_share"`
}

// ChartPoint is one dated value in a chart series.
type ChartPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}
