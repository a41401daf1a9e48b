package syncing

import (
	"context"
	"strings"
	"time"

	"github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo"
	kdomain "github.com/agencyops/marketing-metrics-api/infrastructure/integrator/klaviyo/domain"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
	"github.com/agencyops/marketing-metrics-api/pkg/utils"
)

// syncRevenueAttribution builds one daily bucket per day of the window from
// the conversion metric aggregate, split by attributed channel. Channels
// other than email and sms are ignored; a day without attributed orders is
// still written with zeros so the chart axis has no holes.
func (s *Service) syncRevenueAttribution(
	ctx context.Context,
	integrator klaviyo.Integrator,
	tenant *domain.Tenant,
	conversionMetricID string,
	window kdomain.Timeframe,
	r *domain.DomainReport,
) error {
	result, err := integrator.RevenueByChannel(ctx, conversionMetricID, window)
	if err != nil {
		return err
	}

	buckets := make(map[time.Time]*domain.RevenueAttributionMetric)
	for day := utils.TruncateToDay(window.Start); !day.After(window.End); day = day.AddDate(0, 0, 1) {
		buckets[day] = &domain.RevenueAttributionMetric{
			TenantID: tenant.ID,
			Date:     day,
		}
	}

	for _, agg := range result.Series {
		channel := attributedChannel(agg.Dimensions)
		if channel == "" {
			continue
		}

		revenue := agg.Measurements["sum_value"]
		orders := agg.Measurements["count"]

		for i, dt := range result.Dates {
			bucket, ok := buckets[utils.TruncateToDay(dt)]
			if !ok {
				continue
			}

			switch channel {
			case "email":
				bucket.EmailRevenue += seriesValue(revenue, i)
				bucket.EmailOrders += int(seriesValue(orders, i))
			case "sms":
				bucket.SMSRevenue += seriesValue(revenue, i)
				bucket.SMSOrders += int(seriesValue(orders, i))
			}
		}
	}

	r.ItemsTotal = len(buckets)

	for _, bucket := range buckets {
		if err := ctx.Err(); err != nil {
			return err
		}

		bucket.RecomputeShares()
		if err := s.revenueRepo.SaveOrUpdate(bucket); err != nil {
			r.RecordFailure(bucket.Date.Format("2006-01-02"), err)
			continue
		}
		r.RecordSuccess()
	}

	return nil
}

// attributedChannel normalizes the aggregate's channel dimension; the
// platform reports it with a "$" prefix.
func attributedChannel(dimensions []string) string {
	if len(dimensions) == 0 {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(dimensions[0]), "$")
}
