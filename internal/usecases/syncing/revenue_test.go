package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	kdomain "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/domain"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
)

func TestSyncRevenueAttribution_SplitsByNormalizedChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSyncService(ctrl)

	day1 := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	window := kdomain.Timeframe{Start: day1, End: day2}

	m.integrator.EXPECT().RevenueByChannel(gomock.Any(), "m1", window).
		Return(&kdomain.AggregateResult{
			Dates: []time.Time{day1, day2},
			Series: []kdomain.AggregateSeries{
				{
					// the platform reports channels with a "$" prefix
					Dimensions: []string{"$email"},
					Measurements: map[string][]float64{
						"sum_value": {300, 0},
						"count":     {12, 0},
					},
				},
				{
					Dimensions: []string{"SMS"},
					Measurements: map[string][]float64{
						"sum_value": {100, 0},
						"count":     {4, 0},
					},
				},
				{
					// unknown channels are ignored
					Dimensions: []string{"$push"},
					Measurements: map[string][]float64{
						"sum_value": {999, 999},
						"count":     {9, 9},
					},
				},
			},
		}, nil)

	saved := make(map[string]*domain.RevenueAttributionMetric)
	m.revenueRepo.EXPECT().SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(metric *domain.RevenueAttributionMetric) error {
			saved[metric.Date.Format("2006-01-02")] = metric
			return nil
		}).Times(2)

	report := &domain.DomainReport{}
	err := service.syncRevenueAttribution(context.Background(), m.integrator, activeTenant(), "m1", window, report)
	require.NoError(t, err)

	withRevenue := saved["2026-08-10"]
	require.NotNil(t, withRevenue)
	assert.Equal(t, 300.0, withRevenue.EmailRevenue)
	assert.Equal(t, 100.0, withRevenue.SMSRevenue)
	assert.Equal(t, 400.0, withRevenue.TotalRevenue)
	assert.Equal(t, 12, withRevenue.EmailOrders)
	assert.Equal(t, 4, withRevenue.SMSOrders)
	assert.InDelta(t, 0.75, withRevenue.EmailShare, 1e-9)

	// a day without attributed orders is still written, zeroed
	empty := saved["2026-08-11"]
	require.NotNil(t, empty)
	assert.Zero(t, empty.TotalRevenue)
	assert.Zero(t, empty.EmailShare)
}

func TestSyncRevenueAttribution_ReportFailureFailsTheDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSyncService(ctrl)
	window := kdomain.Timeframe{End: time.Now().UTC()}

	transient := &kdomain.APIError{Kind: kdomain.ErrKindTransient, StatusCode: 502}
	m.integrator.EXPECT().RevenueByChannel(gomock.Any(), "m1", window).Return(nil, transient)

	report := &domain.DomainReport{}
	err := service.syncRevenueAttribution(context.Background(), m.integrator, activeTenant(), "m1", window, report)
	assert.True(t, kdomain.IsTransient(err))
}

func TestAttributedChannel(t *testing.T) {
	assert.Equal(t, "email", attributedChannel([]string{"$email"}))
	assert.Equal(t, "sms", attributedChannel([]string{"SMS"}))
	assert.Equal(t, "push", attributedChannel([]string{"$Push"}))
	assert.Empty(t, attributedChannel(nil))
}
