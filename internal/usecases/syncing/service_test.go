package syncing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo"
	kdomain "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/domain"
	klaviyomocks "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/mocks"
	"github.com/agencyops/marketing-metrics-api/infrastructure/repository/mocks"
	"github.com/agencyops/marketing-metrics-api/internal/config"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
)

type syncMocks struct {
	tenantRepo     *mocks.MockTenantRepository
	campaignRepo   *mocks.MockCampaignMetricRepository
	flowRepo       *mocks.MockFlowMetricRepository
	segmentRepo    *mocks.MockSegmentMetricRepository
	listGrowthRepo *mocks.MockListGrowthMetricRepository
	revenueRepo    *mocks.MockRevenueAttributionRepository
	integrator     *klaviyomocks.MockIntegrator
}

func newSyncService(ctrl *gomock.Controller) (*Service, *syncMocks) {
	m := &syncMocks{
		tenantRepo:     mocks.NewMockTenantRepository(ctrl),
		campaignRepo:   mocks.NewMockCampaignMetricRepository(ctrl),
		flowRepo:       mocks.NewMockFlowMetricRepository(ctrl),
		segmentRepo:    mocks.NewMockSegmentMetricRepository(ctrl),
		listGrowthRepo: mocks.NewMockListGrowthMetricRepository(ctrl),
		revenueRepo:    mocks.NewMockRevenueAttributionRepository(ctrl),
		integrator:     klaviyomocks.NewMockIntegrator(ctrl),
	}

	cfg := &config.Config{
		MetricsSync: config.MetricsSync{LookbackDays: 2, FlowLookbackWeeks: 1},
	}

	service := &Service{
		cfg:            cfg,
		newIntegrator:  func(string) klaviyo.Integrator { return m.integrator },
		tenantRepo:     m.tenantRepo,
		campaignRepo:   m.campaignRepo,
		flowRepo:       m.flowRepo,
		segmentRepo:    m.segmentRepo,
		listGrowthRepo: m.listGrowthRepo,
		revenueRepo:    m.revenueRepo,
	}

	return service, m
}

func activeTenant() *domain.Tenant {
	return &domain.Tenant{
		ID:                   "t1",
		Name:                 "Acme",
		APIKey:               "pk_test",
		ConversionMetricName: "Placed Order",
		Status:               domain.TenantStatusActive,
	}
}

func TestRunSync_TenantValidation(t *testing.T) {
	tests := []struct {
		name    string
		tenant  *domain.Tenant
		wantErr error
	}{
		{
			name:    "unknown tenant",
			tenant:  nil,
			wantErr: ErrTenantNotFound,
		},
		{
			name: "inactive tenant",
			tenant: &domain.Tenant{
				ID: "t1", APIKey: "pk", Status: domain.TenantStatusInactive,
			},
			wantErr: ErrTenantInactive,
		},
		{
			name: "missing credential",
			tenant: &domain.Tenant{
				ID: "t1", Status: domain.TenantStatusActive,
			},
			wantErr: ErrMissingAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newSyncService(ctrl)
			m.tenantRepo.EXPECT().GetByID("t1").Return(tt.tenant, nil)

			report, err := service.RunSync(context.Background(), "t1")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, report)
		})
	}
}

func TestRunSync_DomainFailureDoesNotAbortOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSyncService(ctrl)
	m.tenantRepo.EXPECT().GetByID("t1").Return(activeTenant(), nil)

	m.integrator.EXPECT().ResolveMetricID(gomock.Any(), gomock.Any()).Return("m1", nil).AnyTimes()

	// campaigns fail at the listing call
	m.integrator.EXPECT().ListCampaigns(gomock.Any()).
		Return(nil, &kdomain.APIError{Kind: kdomain.ErrKindTransient, StatusCode: 502})

	// every other domain completes
	m.integrator.EXPECT().ListFlows(gomock.Any()).Return(nil, nil)
	m.integrator.EXPECT().ListSegments(gomock.Any()).Return(nil, nil)
	m.integrator.EXPECT().EventSeries(gomock.Any(), "m1", gomock.Any()).
		Return(&kdomain.AggregateResult{}, nil).Times(5)
	m.integrator.EXPECT().RevenueByChannel(gomock.Any(), "m1", gomock.Any()).
		Return(&kdomain.AggregateResult{}, nil)

	m.listGrowthRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).AnyTimes()
	m.revenueRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).AnyTimes()

	report, err := service.RunSync(context.Background(), "t1")
	require.NoError(t, err)

	assert.Equal(t, domain.DomainStatusFailed, report.Domains[domain.SyncDomainCampaigns].Status)
	assert.NotEmpty(t, report.Domains[domain.SyncDomainCampaigns].Message)

	assert.Equal(t, domain.DomainStatusSucceeded, report.Domains[domain.SyncDomainFlows].Status)
	assert.Equal(t, domain.DomainStatusSucceeded, report.Domains[domain.SyncDomainSegments].Status)
	assert.Equal(t, domain.DomainStatusSucceeded, report.Domains[domain.SyncDomainListGrowth].Status)
	assert.Equal(t, domain.DomainStatusSucceeded, report.Domains[domain.SyncDomainRevenueAttribution].Status)
}

func TestRunSync_ConversionMetricFailureFailsOnlyRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSyncService(ctrl)
	m.tenantRepo.EXPECT().GetByID("t1").Return(activeTenant(), nil)

	// the conversion metric cannot be resolved; consent metrics are simply
	// absent for this tenant
	convErr := &kdomain.APIError{Kind: kdomain.ErrKindTransient, StatusCode: 503}
	m.integrator.EXPECT().ResolveMetricID(gomock.Any(), "Placed Order").Return("", convErr)
	m.integrator.EXPECT().ResolveMetricID(gomock.Any(), gomock.Not("Placed Order")).
		Return("", klaviyo.ErrMetricNotFound).AnyTimes()

	// campaigns and flows still sync with an empty conversion metric id
	m.integrator.EXPECT().ListCampaigns(gomock.Any()).Return(nil, nil)
	m.integrator.EXPECT().ListFlows(gomock.Any()).Return(nil, nil)
	m.integrator.EXPECT().ListSegments(gomock.Any()).Return(nil, nil)

	m.listGrowthRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).AnyTimes()

	report, err := service.RunSync(context.Background(), "t1")
	require.NoError(t, err)

	assert.Equal(t, domain.DomainStatusFailed, report.Domains[domain.SyncDomainRevenueAttribution].Status)
	assert.Equal(t, domain.DomainStatusSucceeded, report.Domains[domain.SyncDomainCampaigns].Status)
	assert.Equal(t, domain.DomainStatusSucceeded, report.Domains[domain.SyncDomainFlows].Status)
	assert.Equal(t, domain.DomainStatusSucceeded, report.Domains[domain.SyncDomainListGrowth].Status)
}

func TestTrimOldCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSyncService(ctrl)

	// disabled by default: the repository is never touched
	service.trimOldCampaigns("t1")

	service.cfg.MetricsSync.RetentionDays = 90
	m.campaignRepo.EXPECT().DeleteOlderThan("t1", 90).Return(int64(3), nil)
	service.trimOldCampaigns("t1")

	// a trim failure is logged, never propagated
	m.campaignRepo.EXPECT().DeleteOlderThan("t1", 90).Return(int64(0), assert.AnError)
	service.trimOldCampaigns("t1")
}
