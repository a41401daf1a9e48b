package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/agencyops/marketing-metrics-api/infrastructure/repository/mocks"
	"github.com/agencyops/marketing-metrics-api/internal/config"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
)

// blockingSyncer holds every RunSync call until release is closed, so tests
// can observe the in-flight state deterministically.
type blockingSyncer struct {
	started chan string
	release chan struct{}
	report  *domain.SyncReport
	err     error
}

func (s *blockingSyncer) RunSync(_ context.Context, tenantID string) (*domain.SyncReport, error) {
	if s.started != nil {
		s.started <- tenantID
	}
	if s.release != nil {
		<-s.release
	}
	return s.report, s.err
}

func syncTestConfig(enabled bool) *config.Config {
	return &config.Config{
		MetricsSync: config.MetricsSync{
			CronSchedule:      "0 3 * * *",
			Enabled:           enabled,
			LookbackDays:      30,
			FlowLookbackWeeks: 12,
		},
	}
}

func TestRunTenantSync_RejectsConcurrentRunsForTheSameTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantRepo := mocks.NewMockTenantRepository(ctrl)
	syncer := &blockingSyncer{
		started: make(chan string, 1),
		release: make(chan struct{}),
		report:  domain.NewSyncReport("t1"),
	}

	service := NewMetricsSyncService(tenantRepo, syncer, syncTestConfig(true))

	firstDone := make(chan error, 1)
	go func() {
		_, err := service.RunTenantSync(context.Background(), "t1")
		firstDone <- err
	}()

	select {
	case <-syncer.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first sync never started")
	}

	_, err := service.RunTenantSync(context.Background(), "t1")
	assert.ErrorIs(t, err, ErrSyncInProgress)

	close(syncer.release)
	require.NoError(t, <-firstDone)

	// the guard is released once the run finishes
	syncer.release = nil
	syncer.started = nil
	_, err = service.RunTenantSync(context.Background(), "t1")
	assert.NoError(t, err)
}

func TestRunTenantSync_StoresTheLastReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantRepo := mocks.NewMockTenantRepository(ctrl)
	report := domain.NewSyncReport("t1")
	syncer := &blockingSyncer{report: report}

	service := NewMetricsSyncService(tenantRepo, syncer, syncTestConfig(true))

	require.Nil(t, service.LastReport("t1"))

	got, err := service.RunTenantSync(context.Background(), "t1")
	require.NoError(t, err)
	assert.Same(t, report, got)
	assert.Same(t, report, service.LastReport("t1"))
	assert.Nil(t, service.LastReport("other"))
}

func TestRunTenantSync_FailedRunLeavesNoReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantRepo := mocks.NewMockTenantRepository(ctrl)
	syncer := &blockingSyncer{err: assert.AnError}

	service := NewMetricsSyncService(tenantRepo, syncer, syncTestConfig(true))

	_, err := service.RunTenantSync(context.Background(), "t1")
	require.Error(t, err)
	assert.Nil(t, service.LastReport("t1"))
}

func TestStart_DisabledByConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantRepo := mocks.NewMockTenantRepository(ctrl)
	service := NewMetricsSyncService(tenantRepo, &blockingSyncer{}, syncTestConfig(false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// nothing is scheduled, so no tenant listing ever happens
	require.NoError(t, service.Start(ctx))
}

func TestGetStatus_ReflectsConfigurationAndState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantRepo := mocks.NewMockTenantRepository(ctrl)
	service := NewMetricsSyncService(tenantRepo, &blockingSyncer{}, syncTestConfig(true))

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 30, status["sync_lookback_days"])
	assert.Equal(t, false, status["sync_running"])
	assert.Empty(t, status["tenants_in_flight"])
}
