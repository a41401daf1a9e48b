package syncing

import (
	"context"
	"fmt"

	"github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo"
	kdomain "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/domain"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
	"github.com/agencyops/marketing-metrics-api/pkg/utils"
)

// syncFlows reconciles flow identities plus one weekly series report per
// flow. A failed report for one flow is recorded against that flow and the
// remaining flows still sync; auth and request errors abort the domain
// since every subsequent call would fail the same way.
func (s *Service) syncFlows(
	ctx context.Context,
	integrator klaviyo.Integrator,
	tenant *domain.Tenant,
	conversionMetricID string,
	window kdomain.Timeframe,
	r *domain.DomainReport,
) error {
	flows, err := integrator.ListFlows(ctx)
	if err != nil {
		return err
	}

	r.ItemsTotal = len(flows)

	for _, f := range flows {
		if err := ctx.Err(); err != nil {
			return err
		}

		flow := &domain.FlowMetric{
			TenantID:    tenant.ID,
			ExternalID:  f.ID,
			Name:        f.Name,
			Status:      domain.FlowStatus(f.Status),
			TriggerType: f.TriggerType,
		}
		if err := s.flowRepo.SaveOrUpdateFlow(flow); err != nil {
			r.RecordFailure(f.ID, err)
			continue
		}

		series, err := integrator.FlowWeeklySeries(ctx, f.ID, conversionMetricID, window)
		if err != nil {
			if kdomain.IsFatal(err) || kdomain.IsRequestInvalid(err) {
				return err
			}
			r.RecordFailure(f.ID, err)
			continue
		}

		if err := s.reconcileFlowWeeks(tenant.ID, f.ID, series); err != nil {
			r.RecordFailure(f.ID, err)
			continue
		}
		r.RecordSuccess()
	}

	return nil
}

// reconcileFlowWeeks writes one row per (message, week) bucket. Re-running
// the same report replaces each bucket instead of adding to it.
func (s *Service) reconcileFlowWeeks(tenantID, flowID string, series *kdomain.SeriesReport) error {
	for _, row := range series.Rows {
		messageID := row.Groupings["flow_message_id"]
		if messageID == "" {
			continue
		}

		for i, dt := range series.DateTimes {
			metric := &domain.FlowMessageMetric{
				TenantID:        tenantID,
				FlowID:          flowID,
				MessageID:       messageID,
				WeekStart:       utils.WeekStart(dt),
				OpensUnique:     int(seriesValue(row.Statistics["opens_unique"], i)),
				ClicksUnique:    int(seriesValue(row.Statistics["clicks_unique"], i)),
				Conversions:     int(seriesValue(row.Statistics["conversions"], i)),
				ConversionValue: seriesValue(row.Statistics["conversion_value"], i),
			}

			if err := s.flowRepo.SaveOrUpdateMessageWeek(metric); err != nil {
				return fmt.Errorf("message %s week %s: %w", messageID, metric.WeekStart.Format("2006-01-02"), err)
			}
		}
	}

	return nil
}
