package syncing

import (
	"context"
	"time"

	"github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
)

// syncSegments snapshots every segment's profile count.
func (s *Service) syncSegments(
	ctx context.Context,
	integrator klaviyo.Integrator,
	tenant *domain.Tenant,
	r *domain.DomainReport,
) error {
	segments, err := integrator.ListSegments(ctx)
	if err != nil {
		return err
	}

	r.ItemsTotal = len(segments)
	now := time.Now().UTC()

	for _, seg := range segments {
		if err := ctx.Err(); err != nil {
			return err
		}

		metric := &domain.SegmentMetric{
			TenantID:     tenant.ID,
			ExternalID:   seg.ID,
			Name:         seg.Name,
			ProfileCount: seg.ProfileCount,
			SyncedAt:     now,
		}

		if err := s.segmentRepo.SaveOrUpdate(metric); err != nil {
			r.RecordFailure(seg.ID, err)
			continue
		}
		r.RecordSuccess()
	}

	return nil
}
