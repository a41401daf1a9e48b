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

func TestSyncFlows_WritesOneRowPerMessageWeek(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSyncService(ctrl)

	window := kdomain.Timeframe{
		Start: time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC),
	}
	week1 := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	week2 := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	m.integrator.EXPECT().ListFlows(gomock.Any()).Return([]kdomain.Flow{
		{ID: "f1", Name: "Welcome", Status: "live", TriggerType: "list"},
	}, nil)

	m.flowRepo.EXPECT().SaveOrUpdateFlow(gomock.Any()).
		DoAndReturn(func(flow *domain.FlowMetric) error {
			assert.Equal(t, "f1", flow.ExternalID)
			assert.Equal(t, domain.FlowStatus("live"), flow.Status)
			return nil
		})

	m.integrator.EXPECT().FlowWeeklySeries(gomock.Any(), "f1", "m1", window).
		Return(&kdomain.SeriesReport{
			DateTimes: []time.Time{week1, week2},
			Rows: []kdomain.SeriesRow{
				{
					Groupings: map[string]string{"flow_message_id": "msg1"},
					Statistics: map[string][]float64{
						"opens_unique":     {40, 35},
						"clicks_unique":    {10, 8},
						"conversions":      {4, 2},
						"conversion_value": {100, 50},
					},
				},
				// a row the platform returns without a message grouping is skipped
				{Groupings: map[string]string{}},
			},
		}, nil)

	var saved []*domain.FlowMessageMetric
	m.flowRepo.EXPECT().SaveOrUpdateMessageWeek(gomock.Any()).
		DoAndReturn(func(metric *domain.FlowMessageMetric) error {
			saved = append(saved, metric)
			return nil
		}).Times(2)

	report := &domain.DomainReport{}
	err := service.syncFlows(context.Background(), m.integrator, activeTenant(), "m1", window, report)
	require.NoError(t, err)

	assert.Equal(t, 1, report.ItemsSucceeded)
	require.Len(t, saved, 2)

	assert.Equal(t, week1, saved[0].WeekStart)
	assert.Equal(t, 100.0, saved[0].ConversionValue)
	assert.Equal(t, 40, saved[0].OpensUnique)

	assert.Equal(t, week2, saved[1].WeekStart)
	assert.Equal(t, 50.0, saved[1].ConversionValue)
}

func TestSyncFlows_AuthErrorAbortsTheDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSyncService(ctrl)
	window := kdomain.Timeframe{End: time.Now().UTC()}

	m.integrator.EXPECT().ListFlows(gomock.Any()).Return([]kdomain.Flow{
		{ID: "f1"}, {ID: "f2"},
	}, nil)
	m.flowRepo.EXPECT().SaveOrUpdateFlow(gomock.Any()).Return(nil)

	fatal := &kdomain.APIError{Kind: kdomain.ErrKindFatal, StatusCode: 401}
	m.integrator.EXPECT().FlowWeeklySeries(gomock.Any(), "f1", "m1", window).Return(nil, fatal)

	// f2 is never attempted
	report := &domain.DomainReport{}
	err := service.syncFlows(context.Background(), m.integrator, activeTenant(), "m1", window, report)
	assert.True(t, kdomain.IsFatal(err))
}

func TestSyncFlows_TransientReportErrorOnlyFailsThatFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSyncService(ctrl)
	window := kdomain.Timeframe{End: time.Now().UTC()}

	m.integrator.EXPECT().ListFlows(gomock.Any()).Return([]kdomain.Flow{
		{ID: "f1"}, {ID: "f2"},
	}, nil)
	m.flowRepo.EXPECT().SaveOrUpdateFlow(gomock.Any()).Return(nil).Times(2)

	transient := &kdomain.APIError{Kind: kdomain.ErrKindTransient, StatusCode: 502}
	m.integrator.EXPECT().FlowWeeklySeries(gomock.Any(), "f1", "m1", window).Return(nil, transient)
	m.integrator.EXPECT().FlowWeeklySeries(gomock.Any(), "f2", "m1", window).
		Return(&kdomain.SeriesReport{}, nil)

	report := &domain.DomainReport{}
	err := service.syncFlows(context.Background(), m.integrator, activeTenant(), "m1", window, report)
	require.NoError(t, err)

	assert.Equal(t, 1, report.ItemsSucceeded)
	assert.Equal(t, 1, report.ItemsFailed)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "f1", report.Errors[0].ExternalID)
}
