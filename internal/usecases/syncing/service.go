package syncing

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	kdomain "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/domain"
	"github.com/agencyops/marketing-metrics-api/infrastructure/repository"
	"github.com/agencyops/marketing-metrics-api/internal/config"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
)

type Service struct {
	cfg           *config.Config
	newIntegrator IntegratorFactory

	tenantRepo     repository.TenantRepository
	campaignRepo   repository.CampaignMetricRepository
	flowRepo       repository.FlowMetricRepository
	segmentRepo    repository.SegmentMetricRepository
	listGrowthRepo repository.ListGrowthMetricRepository
	revenueRepo    repository.RevenueAttributionRepository
}

func NewService(
	cfg *config.Config,
	newIntegrator IntegratorFactory,
	tenantRepo repository.TenantRepository,
	campaignRepo repository.CampaignMetricRepository,
	flowRepo repository.FlowMetricRepository,
	segmentRepo repository.SegmentMetricRepository,
	listGrowthRepo repository.ListGrowthMetricRepository,
	revenueRepo repository.RevenueAttributionRepository,
) Syncer {
	return &Service{
		cfg:            cfg,
		newIntegrator:  newIntegrator,
		tenantRepo:     tenantRepo,
		campaignRepo:   campaignRepo,
		flowRepo:       flowRepo,
		segmentRepo:    segmentRepo,
		listGrowthRepo: listGrowthRepo,
		revenueRepo:    revenueRepo,
	}
}

// RunSync executes the five data domains for one tenant concurrently and
// returns the run report. A failure in one domain never aborts the others;
// context cancellation stops further remote calls in every domain.
func (s *Service) RunSync(ctx context.Context, tenantID string) (*domain.SyncReport, error) {
	tenant, err := s.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, ErrTenantNotFound
	}
	if tenant.Status != domain.TenantStatusActive {
		return nil, ErrTenantInactive
	}
	if tenant.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	integrator := s.newIntegrator(tenant.APIKey)

	report := domain.NewSyncReport(tenantID)
	report.StartedAt = time.Now().UTC()

	logrus.WithField("tenant_id", tenantID).Info("syncing: run started")

	window := kdomain.Timeframe{
		Start: report.StartedAt.AddDate(0, 0, -s.cfg.MetricsSync.LookbackDays),
		End:   report.StartedAt,
	}
	flowWindow := kdomain.Timeframe{
		Start: report.StartedAt.AddDate(0, 0, -7*s.cfg.MetricsSync.FlowLookbackWeeks),
		End:   report.StartedAt,
	}

	// The conversion metric id is resolved once and shared by every domain
	// that reports revenue. If resolution fails, only revenue attribution
	// fails with it: campaigns and flows still sync, with zeroed conversion
	// statistics (the report endpoints accept an absent conversion metric
	// and silently return zeros for those fields).
	conversionMetricID, convErr := integrator.ResolveMetricID(ctx, tenant.ConversionMetricName)
	if convErr != nil {
		logrus.WithField("tenant_id", tenantID).WithError(convErr).
			Warn("syncing: conversion metric resolution failed")
	}

	type domainRun struct {
		name domain.SyncDomain
		run  func(ctx context.Context, r *domain.DomainReport) error
	}

	runs := []domainRun{
		{domain.SyncDomainCampaigns, func(ctx context.Context, r *domain.DomainReport) error {
			return s.syncCampaigns(ctx, integrator, tenant, conversionMetricID, window, r)
		}},
		{domain.SyncDomainFlows, func(ctx context.Context, r *domain.DomainReport) error {
			return s.syncFlows(ctx, integrator, tenant, conversionMetricID, flowWindow, r)
		}},
		{domain.SyncDomainSegments, func(ctx context.Context, r *domain.DomainReport) error {
			return s.syncSegments(ctx, integrator, tenant, r)
		}},
		{domain.SyncDomainListGrowth, func(ctx context.Context, r *domain.DomainReport) error {
			return s.syncListGrowth(ctx, integrator, tenant, window, r)
		}},
		{domain.SyncDomainRevenueAttribution, func(ctx context.Context, r *domain.DomainReport) error {
			if convErr != nil {
				return convErr
			}
			return s.syncRevenueAttribution(ctx, integrator, tenant, conversionMetricID, window, r)
		}},
	}

	var wg sync.WaitGroup
	for _, dr := range runs {
		wg.Add(1)
		go func(dr domainRun) {
			defer wg.Done()

			r := report.Domains[dr.name]
			r.Status = domain.DomainStatusRunning

			if err := dr.run(ctx, r); err != nil {
				logrus.WithFields(logrus.Fields{
					"tenant_id": tenantID,
					"domain":    dr.name,
				}).WithError(err).Error("syncing: domain failed")
				r.Fail(err)
			}
			r.Finish()
		}(dr)
	}
	wg.Wait()

	report.CompletedAt = time.Now().UTC()

	s.trimOldCampaigns(tenantID)

	logrus.WithFields(logrus.Fields{
		"tenant_id":   tenantID,
		"duration_ms": report.CompletedAt.Sub(report.StartedAt).Milliseconds(),
	}).Info("syncing: run finished")

	return report, nil
}

// trimOldCampaigns applies the optional retention policy after a run. A trim
// failure never fails the sync.
func (s *Service) trimOldCampaigns(tenantID string) {
	days := s.cfg.MetricsSync.RetentionDays
	if days <= 0 {
		return
	}

	deleted, err := s.campaignRepo.DeleteOlderThan(tenantID, days)
	if err != nil {
		logrus.WithField("tenant_id", tenantID).WithError(err).
			Warn("syncing: campaign retention trim failed")
		return
	}

	if deleted > 0 {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"deleted":   deleted,
		}).Info("syncing: trimmed campaign metrics past retention")
	}
}

// statInt reads one statistic, defaulting to 0 when the provider omitted
// the field entirely.
func statInt(stats map[string]float64, key string) int {
	return int(stats[key])
}

func statFloat(stats map[string]float64, key string) float64 {
	return stats[key]
}

// seriesValue reads position i of a bucketed statistic, tolerating series
// shorter than the report's date axis.
func seriesValue(values []float64, i int) float64 {
	if i < 0 || i >= len(values) {
		return 0
	}
	return values[i]
}
