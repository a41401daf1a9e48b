package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo"
	kdomain "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/domain"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
)

func TestSyncListGrowth_ZeroFillsEveryDayOfTheWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSyncService(ctrl)

	day1 := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)
	window := kdomain.Timeframe{Start: day1.Add(6 * time.Hour), End: day3.Add(6 * time.Hour)}

	// only the email subscription metric exists and only day2 has events
	m.integrator.EXPECT().ResolveMetricID(gomock.Any(), metricSubscribedEmail).Return("m-sub", nil)
	m.integrator.EXPECT().ResolveMetricID(gomock.Any(), gomock.Not(metricSubscribedEmail)).
		Return("", klaviyo.ErrMetricNotFound).Times(4)

	m.integrator.EXPECT().EventSeries(gomock.Any(), "m-sub", window).
		Return(&kdomain.AggregateResult{
			Dates: []time.Time{day2},
			Series: []kdomain.AggregateSeries{
				{Measurements: map[string][]float64{"count": {25}}},
			},
		}, nil)

	saved := make(map[string]*domain.ListGrowthMetric)
	m.listGrowthRepo.EXPECT().SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(metric *domain.ListGrowthMetric) error {
			saved[metric.Date.Format("2006-01-02")] = metric
			return nil
		}).Times(3)

	report := &domain.DomainReport{}
	err := service.syncListGrowth(context.Background(), m.integrator, activeTenant(), window, report)
	require.NoError(t, err)

	assert.Equal(t, 3, report.ItemsTotal)
	assert.Equal(t, 3, report.ItemsSucceeded)

	withEvents := saved["2026-08-11"]
	require.NotNil(t, withEvents)
	assert.Equal(t, 25, withEvents.EmailSubscriptions)
	assert.Equal(t, 25, withEvents.NetGrowth)
	assert.InDelta(t, 1.0, withEvents.GrowthRate, 1e-9)

	for _, key := range []string{"2026-08-10", "2026-08-12"} {
		empty := saved[key]
		require.NotNil(t, empty, key)
		assert.Zero(t, empty.EmailSubscriptions)
		assert.Zero(t, empty.NetGrowth)
		assert.Equal(t, domain.GrowthIntervalDay, empty.Interval)
	}
}

func TestSyncListGrowth_AllConsentMetricsAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSyncService(ctrl)

	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	window := kdomain.Timeframe{Start: day, End: day}

	m.integrator.EXPECT().ResolveMetricID(gomock.Any(), gomock.Any()).
		Return("", klaviyo.ErrMetricNotFound).Times(5)
	m.listGrowthRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	report := &domain.DomainReport{}
	err := service.syncListGrowth(context.Background(), m.integrator, activeTenant(), window, report)
	require.NoError(t, err)
	assert.Equal(t, 1, report.ItemsSucceeded)
}

func TestSyncListGrowth_ResolutionErrorFailsTheDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSyncService(ctrl)

	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	window := kdomain.Timeframe{Start: day, End: day}

	rateLimited := &kdomain.APIError{Kind: kdomain.ErrKindRateLimited, StatusCode: 429}
	m.integrator.EXPECT().ResolveMetricID(gomock.Any(), metricSubscribedEmail).Return("", rateLimited)

	report := &domain.DomainReport{}
	err := service.syncListGrowth(context.Background(), m.integrator, activeTenant(), window, report)
	assert.True(t, kdomain.IsRateLimited(err))
}
