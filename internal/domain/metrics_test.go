package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCampaignMetric_RecomputeRates(t *testing.T) {
	m := &CampaignMetric{
		Recipients:   1000,
		Delivered:    950,
		OpensUnique:  380,
		ClicksUnique: 95,
		Bounced:      50,
	}
	m.RecomputeRates()

	assert.InDelta(t, 0.4, m.OpenRate, 1e-9)
	assert.InDelta(t, 0.1, m.ClickRate, 1e-9)
	assert.InDelta(t, 0.05, m.BounceRate, 1e-9)
}

func TestCampaignMetric_RecomputeRatesZeroDelivered(t *testing.T) {
	m := &CampaignMetric{Recipients: 0, Delivered: 0, OpensUnique: 3}
	m.RecomputeRates()

	assert.Zero(t, m.OpenRate)
	assert.Zero(t, m.ClickRate)
	assert.Zero(t, m.BounceRate)
}

func TestCampaignMetric_IsSent(t *testing.T) {
	sent := time.Now()
	assert.True(t, (&CampaignMetric{SentAt: &sent}).IsSent())
	assert.False(t, (&CampaignMetric{}).IsSent())
}

func TestListGrowthMetric_RecomputeDerived(t *testing.T) {
	m := &ListGrowthMetric{
		EmailSubscriptions:   80,
		SMSSubscriptions:     20,
		EmailUnsubscriptions: 15,
		SMSUnsubscriptions:   5,
	}
	m.RecomputeDerived()

	assert.Equal(t, 80, m.NetGrowth)
	assert.InDelta(t, 0.8, m.GrowthRate, 1e-9)
	assert.InDelta(t, 0.2, m.ChurnRate, 1e-9)
}

func TestListGrowthMetric_RecomputeDerivedNoSubscriptions(t *testing.T) {
	m := &ListGrowthMetric{EmailUnsubscriptions: 7}
	m.RecomputeDerived()

	assert.Equal(t, -7, m.NetGrowth)
	assert.Zero(t, m.GrowthRate)
	assert.Zero(t, m.ChurnRate)
}

func TestRevenueAttributionMetric_RecomputeShares(t *testing.T) {
	m := &RevenueAttributionMetric{
		EmailRevenue: 750,
		SMSRevenue:   250,
		EmailOrders:  30,
		SMSOrders:    10,
	}
	m.RecomputeShares()

	assert.Equal(t, 1000.0, m.TotalRevenue)
	assert.Equal(t, 40, m.TotalOrders)
	assert.InDelta(t, 0.75, m.EmailShare, 1e-9)
	assert.InDelta(t, 0.25, m.SMSShare, 1e-9)
}

func TestRevenueAttributionMetric_RecomputeSharesZeroDay(t *testing.T) {
	m := &RevenueAttributionMetric{}
	m.RecomputeShares()

	assert.Zero(t, m.TotalRevenue)
	assert.Zero(t, m.EmailShare)
	assert.Zero(t, m.SMSShare)
}

func TestMetricWindow_Previous(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	window := NewTrailingWindow(now, 30)

	previous := window.Previous()
	assert.Equal(t, window.Start, previous.End)
	assert.Equal(t, window.Start.AddDate(0, 0, -30), previous.Start)
	assert.Equal(t, 30, previous.Days)
}

func TestMetricWindow_Contains(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	window := NewTrailingWindow(now, 7)

	assert.True(t, window.Contains(now))
	assert.True(t, window.Contains(window.Start))
	assert.False(t, window.Contains(window.Start.Add(-time.Second)))
	assert.False(t, window.Contains(now.Add(time.Second)))
}

func TestTenant_ToResponseNeverCarriesCredential(t *testing.T) {
	tenant := &Tenant{
		ID:     "t1",
		Name:   "Acme",
		APIKey: "pk_secret",
		Status: TenantStatusActive,
	}

	resp := tenant.ToResponse()
	assert.True(t, resp.HasAPIKey)

	resp = (&Tenant{ID: "t2"}).ToResponse()
	assert.False(t, resp.HasAPIKey)
}
