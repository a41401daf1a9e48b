package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/agencyops/marketing-metrics-api/infrastructure/repository"
	"github.com/agencyops/marketing-metrics-api/internal/config"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
	"github.com/agencyops/marketing-metrics-api/internal/usecases/syncing"
)

// ErrSyncInProgress is returned when a sync is requested for a tenant whose
// previous run has not finished yet.
var ErrSyncInProgress = errors.New("sync already in progress for tenant")

// MetricsSyncService owns the sync trigger: the nightly cron over all
// active tenants plus manual per-tenant triggers from the API. It enforces
// at most one concurrent sync per tenant; the orchestrator itself does not.
type MetricsSyncService struct {
	scheduler  *gocron.Scheduler
	cfg        *config.Config
	tenantRepo repository.TenantRepository
	syncer     syncing.Syncer

	mu          sync.Mutex
	running     bool
	inFlight    map[string]bool
	lastReports map[string]*domain.SyncReport

	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewMetricsSyncService(
	tenantRepo repository.TenantRepository,
	syncer syncing.Syncer,
	cfg *config.Config,
) *MetricsSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":       cfg.MetricsSync.CronSchedule,
		"lookback_days":       cfg.MetricsSync.LookbackDays,
		"flow_lookback_weeks": cfg.MetricsSync.FlowLookbackWeeks,
		"sync_enabled":        cfg.MetricsSync.Enabled,
	}).Info("scheduler: metrics sync configuration loaded")

	return &MetricsSyncService{
		scheduler:   gocron.NewScheduler(time.UTC),
		cfg:         cfg,
		tenantRepo:  tenantRepo,
		syncer:      syncer,
		inFlight:    make(map[string]bool),
		lastReports: make(map[string]*domain.SyncReport),
	}
}

// Start schedules the nightly run and stops the scheduler when ctx ends.
func (s *MetricsSyncService) Start(ctx context.Context) error {
	if !s.cfg.MetricsSync.Enabled {
		logrus.Info("scheduler: metrics sync disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.cfg.MetricsSync.CronSchedule).Do(func() {
		s.syncAllTenants(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling metrics sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping metrics sync")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *MetricsSyncService) syncAllTenants(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("scheduler: metrics sync already running, skipping")
		return
	}
	s.running = true
	s.lastSyncStartedAt = time.Now()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.lastSyncCompletedAt = time.Now()
		s.mu.Unlock()
	}()

	tenants, err := s.tenantRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("scheduler: failed to list active tenants")
		return
	}

	if len(tenants) == 0 {
		logrus.Info("scheduler: no active tenants to sync")
		return
	}

	logrus.WithField("tenants", len(tenants)).Info("scheduler: metrics sync started")

	for _, tenant := range tenants {
		if ctx.Err() != nil {
			return
		}

		report, err := s.RunTenantSync(ctx, tenant.ID)
		if err != nil {
			logrus.WithField("tenant_id", tenant.ID).WithError(err).
				Error("scheduler: tenant sync failed")
			continue
		}

		for _, dr := range report.Domains {
			if dr.Status != domain.DomainStatusSucceeded {
				logrus.WithFields(logrus.Fields{
					"tenant_id": tenant.ID,
					"domain":    dr.Domain,
					"status":    dr.Status,
				}).Warn("scheduler: domain did not fully succeed")
			}
		}
	}

	logrus.WithField("tenants", len(tenants)).Info("scheduler: metrics sync finished")
}

// RunTenantSync runs one tenant's sync, enforcing the per-tenant in-flight
// guard. The API's manual sync endpoint goes through here too, so a nightly
// run and a manual trigger can never overlap for the same tenant.
func (s *MetricsSyncService) RunTenantSync(ctx context.Context, tenantID string) (*domain.SyncReport, error) {
	s.mu.Lock()
	if s.inFlight[tenantID] {
		s.mu.Unlock()
		return nil, ErrSyncInProgress
	}
	s.inFlight[tenantID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, tenantID)
		s.mu.Unlock()
	}()

	report, err := s.syncer.RunSync(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastReports[tenantID] = report
	s.mu.Unlock()

	return report, nil
}

// TriggerManualSync kicks off a full run of all tenants in the background.
func (s *MetricsSyncService) TriggerManualSync() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("scheduler: metrics sync already running, ignoring manual trigger")
		return
	}
	s.mu.Unlock()

	logrus.Info("scheduler: manual metrics sync triggered")
	go s.syncAllTenants(context.Background())
}

// LastReport returns the report of the tenant's most recent completed run.
func (s *MetricsSyncService) LastReport(tenantID string) *domain.SyncReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReports[tenantID]
}

// GetStatus returns the current scheduler state.
func (s *MetricsSyncService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	inFlight := make([]string, 0, len(s.inFlight))
	for id := range s.inFlight {
		inFlight = append(inFlight, id)
	}

	return map[string]any{
		"sync_enabled":           s.cfg.MetricsSync.Enabled,
		"sync_cron":              s.cfg.MetricsSync.CronSchedule,
		"sync_lookback_days":     s.cfg.MetricsSync.LookbackDays,
		"flow_lookback_weeks":    s.cfg.MetricsSync.FlowLookbackWeeks,
		"sync_running":           s.running,
		"tenants_in_flight":      inFlight,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
