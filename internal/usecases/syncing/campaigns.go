package syncing

import (
	"context"
	"time"

	"github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo"
	kdomain "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/domain"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
)

// syncCampaigns reconciles the tenant's email campaigns. Drafts are upserted
// with identity only; campaigns sent inside the window get their statistics
// from a single values report. Campaigns sent before the window are not
// written at all: the report cannot cover them, and an upsert would zero the
// statistics stored by earlier runs.
func (s *Service) syncCampaigns(
	ctx context.Context,
	integrator klaviyo.Integrator,
	tenant *domain.Tenant,
	conversionMetricID string,
	window kdomain.Timeframe,
	r *domain.DomainReport,
) error {
	campaigns, err := integrator.ListCampaigns(ctx)
	if err != nil {
		return err
	}

	r.ItemsTotal = len(campaigns)

	var reportIDs []string
	for _, c := range campaigns {
		if sentInWindow(c.SendTime, window) {
			reportIDs = append(reportIDs, c.ID)
		}
	}

	rowsByID := make(map[string]kdomain.ReportRow, len(reportIDs))
	if len(reportIDs) > 0 {
		rows, err := integrator.CampaignValues(ctx, reportIDs, conversionMetricID, window)
		if err != nil {
			return err
		}
		for _, row := range rows {
			rowsByID[row.Groupings["campaign_id"]] = row
		}
	}

	for _, c := range campaigns {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Sent outside the window: leave the stored row alone.
		if c.SendTime != nil && !sentInWindow(c.SendTime, window) {
			r.RecordSuccess()
			continue
		}

		metric := &domain.CampaignMetric{
			TenantID:    tenant.ID,
			ExternalID:  c.ID,
			Name:        c.Name,
			SubjectLine: c.SubjectLine,
			SentAt:      c.SendTime,
		}

		// A campaign the report did not return keeps zeroed statistics;
		// absent fields inside a returned row also read as 0.
		if row, ok := rowsByID[c.ID]; ok {
			metric.Recipients = statInt(row.Statistics, "recipients")
			metric.Delivered = statInt(row.Statistics, "delivered")
			metric.OpensUnique = statInt(row.Statistics, "opens_unique")
			metric.ClicksUnique = statInt(row.Statistics, "clicks_unique")
			metric.Bounced = statInt(row.Statistics, "bounced")
			metric.Unsubscribed = statInt(row.Statistics, "unsubscribes")
			metric.ConversionValue = statFloat(row.Statistics, "conversion_value")
		}
		metric.RecomputeRates()

		if err := s.campaignRepo.SaveOrUpdate(metric); err != nil {
			r.RecordFailure(c.ID, err)
			continue
		}
		r.RecordSuccess()
	}

	return nil
}

func sentInWindow(sentAt *time.Time, window kdomain.Timeframe) bool {
	if sentAt == nil {
		return false
	}
	return !sentAt.Before(window.Start) && !sentAt.After(window.End)
}
